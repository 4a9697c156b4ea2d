// Package commands defines the idctl CLI, a local front end to the
// identifier codec.
//
// Commands
//
//   - encode   Encode raw values into the local-id alphabet
//   - decode   Decode local-id fragments back to raw text
//   - parse    Split wire identifiers into domain and local id
//   - compose  Build wire identifiers from a raw domain and raw local ids
//   - group    Bucket wire identifiers by domain
//
// Every command reads its inputs from the arguments or, when none are given,
// one per line from stdin. --output selects text, json or yaml.
package commands
