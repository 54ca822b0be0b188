package fabricmock

// Version is the release of the module, overridden at build time with
// -ldflags "-X github.com/aretw0/fabricmock.Version=...".
var Version = "dev"
