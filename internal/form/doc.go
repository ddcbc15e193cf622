// Package form holds the add-screen input state that lives outside the
// store: the candidate name and emoji, and the name length gate that decides
// whether the submit action is enabled.
package form
