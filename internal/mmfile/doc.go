// Package mmfile loads table files, memory-mapping them where the platform allows.
package mmfile
