// Package analysis derives package-level insights from a module list.
//
// [FindDuplicates] spots the same file bundled from several node_modules
// locations, which usually means a dependency was installed more than once
// at different versions. [GroupByPackage] rolls modules up to the npm package
// that owns them.
//
// Both key off the last "node_modules/" segment of a module path, so nested
// installs such as
//
//	node_modules/pkg-a/node_modules/lodash/index.js
//
// are attributed to lodash rather than pkg-a.
package analysis
