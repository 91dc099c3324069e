// Package jsonvault is an embedded, single-file JSON document store with
// optional passphrase encryption at rest.
//
// A Store keeps one nested document in memory and writes it back to its file
// after every mutation. Locations are addressed with a Path, one key per
// segment:
//
//	db, err := jsonvault.Open("settings.json", jsonvault.WithEncryption(passphrase))
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	if _, err := db.Set("dark", jsonvault.P("ui", "theme")); err != nil {
//		return err
//	}
//	theme, ok := db.Get(jsonvault.P("ui", "theme"))
//
// Reads of missing paths return ok == false instead of an error. Writing a
// value equal to the current one is a no-op and reports false.
//
// Open fails on an unreadable, undecryptable or malformed file unless
// WithRecovery is given, in which case the store starts from an empty
// document and save failures are only logged.
package jsonvault
