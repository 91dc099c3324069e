// Package store provides the embedded JSON document store.
//
// A Store holds one nested document in memory and mirrors it to a single
// file. Each mutation is persisted before it returns (SyncEager) or deferred
// until Flush (SyncManual). Writes go through a temp file and an atomic
// rename, and the file may be encrypted at rest with a passphrase cipher
// (see package crypto).
//
// The package includes:
//   - Store: Open, Load, Save, Flush, Close and the path operations Get,
//     GetPath, Set, Delete, Append and Index
//   - FilePersister: creation, raw read and atomic replace of the file
//   - the path resolver used for reads and writes, with an explicit
//     VivifyPolicy for intermediate values
//
// Errors are explicit by default. WithRecovery restores the permissive
// behaviour where an unreadable file is treated as an empty document and a
// failed save is only logged.
//
// A Store is not safe for concurrent use, and nothing guards against two
// processes opening the same file.
package store
