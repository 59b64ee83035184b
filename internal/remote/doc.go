// Package remote talks to the device's FTP server.
//
// Two backends implement Client. FTPClient speaks the protocol directly with
// github.com/jlaffaye/ftp. LFTPClient shells out to lftp, one process per
// operation, and parses its long listing with ParseListing.
//
// Every operation opens its own session and is bounded by the command timeout.
// Failures are returned as *Error; IsStale reports whether the failure suggests
// the device moved and its address should be rediscovered.
package remote
