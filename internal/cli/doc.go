// Package cli turns command-line arguments into an Invocation: the resolved
// configuration plus the mode the program runs in.
//
// Precedence, lowest first: config.Default, the -config file, explicit flags,
// and finally the positional input path.
package cli
