package cli

// Version is the current CLI version.
const Version = "0.1.0"
