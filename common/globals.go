package common

// BanVersion is the current compiler version as a string.
const BanVersion string = "0.1.0"

// BanFileExt is the file extension for a ban source file.
const BanFileExt string = ".ban"

// BanConfigFileName is the name of the optional project configuration file
// looked up next to the compiled source file.
const BanConfigFileName string = "ban.toml"
