// Package chromium implements the history, bookmark, and favicon driven
// ports over a Chromium-family profile directory on disk.
//
// The History store is the profile's SQLite database. A running browser
// holds an exclusive lock on it, so reads go through a temporary
// copy-aside opened read-only; deletions require the browser to be closed.
// The Bookmarks store is the profile's plain-JSON "Bookmarks" file.
package chromium
