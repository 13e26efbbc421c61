package version

const Version = "v0.1.0"
