// Package slug turns display names into ASCII, hyphen-separated identifiers
// suitable for download filenames and URL segments.
//
//	slug.Make("Eleanor Whitfield-Brontë")       // "eleanor-whitfield-bronte"
//	slug.Filename("Mateo Álvarez", ".vcf", "")  // "mateo-alvarez.vcf"
//
// Diacritics are removed through Unicode decomposition (golang.org/x/text),
// any other run of non-alphanumeric characters collapses into one separator.
package slug
