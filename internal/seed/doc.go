// Package seed loads the module and mindmap collections from their JSON
// seed files. Both collections are read whole into memory; the files are
// small catalogs, not streams.
package seed
