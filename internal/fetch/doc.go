// Package fetch retrieves the windowsZones.xml document.
//
// HTTP(S) URLs are fetched with a single GET; file:// URLs and bare paths
// are read from disk so a saved copy of the document can be used offline.
// Every failure is reported as a *NetworkError and is never retried.
package fetch
