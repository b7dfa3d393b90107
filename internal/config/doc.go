// Package config manages the persistent parka configuration: a JSON
// document on disk plus the bootstrapped directory layout around it.
//
// The configuration root lives at ~/.config/parka and contains:
//
//	Drivers/        custom site drivers (seeded with a sample on first install)
//	Sites/          linked sites
//	Extensions/     user CLI extensions
//	Log/            log files (nginx-error.log is touched on install)
//	Certificates/   TLS certificates
//	config.json     the configuration document
//
// # Configuration Document
//
// config.json is a pretty-printed JSON object with a trailing newline.
// Known keys are typed on Document; unknown keys round-trip unchanged
// through Document.Extra so newer or external tooling can store data
// parka does not understand. A fresh install writes:
//
//	{
//	    "domain": "test",
//	    "paths": [],
//	    "port": "80"
//	}
//
// The paths list is an ordered set: insertion order is preserved and
// duplicates collapse onto the first occurrence.
//
// # Store
//
// Store performs every mutation as a full read-modify-write cycle against
// config.json. There is no locking; parka is a single-user interactive
// tool and concurrent invocations are last-writer-wins.
//
// The Store never touches the filesystem directly. It goes through the
// injected filesystem.Filesystem so every created file and directory is
// owned by the real invoking user (resolved by user.Resolver) even when
// parka runs under sudo.
//
// # Usage
//
//	store := config.NewStore(filesystem.NewOSFilesystem(), user.NewOSResolver(), root)
//
//	if err := store.Install(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := store.AddPath("/home/dev/sites", false); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Store operations are NOT thread-safe. Callers must implement their own
// synchronization if accessing a Store from multiple goroutines.
package config
