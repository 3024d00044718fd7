// Package docscrape provides a CLI tool that mirrors a documentation site
// to local markdown files. It asks a remote extraction engine for the links
// on a start page, keeps the ones on the same domain, fetches each page as
// markdown, and writes it with a YAML frontmatter header into a directory
// named after the domain.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, firecrawl/, sqlite/).
package docscrape
