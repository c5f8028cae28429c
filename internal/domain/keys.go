package domain

// KeyPrefix is the default namespace for every key propdex writes to Redis/Valkey.
const KeyPrefix = "propdex:"
