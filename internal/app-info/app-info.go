package app_info

// NAME name of this application
const NAME = "portsweep"

// VERSION current version of this application
const VERSION = "v0.1.0"
