// Package projects discovers and loads metemplate projects from the config
// root.
//
// Every directory below the root is a project:
//
//	<root>/<project>/config.toml        template declarations
//	<root>/<project>/templates/<file>   template sources
//	<root>/<project>/values/<name>.toml value sets (.yaml and .yml work too)
//
// Files directly in the root and hidden directories are skipped. The layout
// names come from config.Project.
package projects
