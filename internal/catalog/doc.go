// Package catalog holds the static data the app starts from: the seed
// hobbies, the emoji palette offered on the add screen, and the glyph used
// when no emoji is picked. The built-in catalog is embedded as YAML and can
// be replaced from a file for tests or local experiments.
package catalog
