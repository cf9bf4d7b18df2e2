// SPDX-License-Identifier: EPL-2.0

// Package metadata holds the two description schemas the archive requires —
// EMSO-style archival fields and EIDA-style station fields — together with
// their key=value importers and a validator that reports every violation in
// one pass.
//
// Templates are entered once per batch; per-file records are derived by
// combining a template with the file's computed coverage window
// (BuildHierarchy, Archival.Tags). Fields a user types are stored as
// strings and only converted after validation has confirmed they parse.
package metadata
