package internal

// MaxReprLen bounds the rendered length of offending values in error
// messages.
const MaxReprLen = 64
