// Package vcconfig holds the solver's tunable parameters as a plain value
// type, threaded explicitly through the solver, reducer, and bound packages
// instead of living as process-wide mutable state.
//
// Config is built with Default() and customized with functional Option
// values: Default() returns sane defaults, and each Option sets one setting
// (some settings span several fields), applied in order so later options
// win.
package vcconfig
