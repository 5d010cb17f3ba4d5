package settings

var Version = "0.2"

// Sample stream format (see stream.Formats)
var Format = "U8"

// Engine variant: fixed, float, ideal or short
var Engine = "fixed"

// Operating sample rate for the ideal/short engines
var Rate = 23550

// Input/output WAV files. Empty means raw stdin/stdout.
var InputWav = ""
var OutputWav = ""

// Register sources
var Preset = ""
var RegDump = ""

// Driver output mix, in dB. An absolute value of 128 or more
// mutes that path.
var DryDB = -128.0
var WetDB = 0.0

// Stream result to speaker when done?
var Play = false

// Live termui dashboard
var Monitor = false

// Per-sample step debugger
var StepDebug = false

// Print the effective register values before processing
var PrintRegs = false

// How often the monitor refreshes, in samples
var MonitorInterval = 1024
