// Package moz registers the Moz API capabilities as dispatchable tools:
// one per endpoint wrapper plus the competitor analysis. Required fields
// are validated before any remote call is issued; optional locale, engine,
// limit and include_keyword_analysis arguments are forwarded verbatim.
package moz
