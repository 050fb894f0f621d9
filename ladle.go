// Package ladle turns raw recipe web pages into canonical, structured
// recipe records. Extraction is layered: site-aware backends produce a
// baseline record from the page's embedded structured data, a deterministic
// enhancement pass repairs known defects in whatever the backend produced,
// and a conversion layer maps the result into the persistence-facing shape.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., jsonld/, goquery/, sqlite/, wazero/).
package ladle
