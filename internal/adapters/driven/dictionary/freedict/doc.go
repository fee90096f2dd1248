// Package freedict implements driven.DictionaryClient against the
// Free Dictionary API (https://dictionaryapi.dev).
//
// Each lookup is a single GET of <base-url>/<word>. There is no retry and no
// client-side timeout; callers bound a lookup with their context.
package freedict
