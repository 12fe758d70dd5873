// Package baseinfo manages the base information of an ERP site: which
// ERP it runs, the docker image, database access and so on. It backs the
// "bb support" command.
//
// Settings live in <repo-home>/baseinfo.json. The file may carry
// comments (it is read as JSONC through github.com/tidwall/jsonc) and is
// written back as indented JSON. "support --show" renders the values as
// YAML.
package baseinfo
