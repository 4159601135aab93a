package generator

import "time"

// DefaultFixedEntries are the entries the fixed-entry variant writes when nothing else is configured.
var DefaultFixedEntries = []KeyValue{
	{Key: "name", Value: "James Errington"},
	{Key: "address", Value: "St Albans, United Kingdom"},
	{Key: "age", Value: "26"},
}

// DefaultFixedDelay is the pause between two fixture files of the fixed-entry variant.
const DefaultFixedDelay = 1500 * time.Millisecond

// DefaultPaddedEntries are the entries the padded-batch variant starts every fixture with.
var DefaultPaddedEntries = []KeyValue{
	{Key: "name", Value: "James Errington"},
	{Key: "country", Value: "United Kingdom"},
}

// DefaultPaddedThreshold is the size in bytes the padded-batch variant fills fixtures up to.
const DefaultPaddedThreshold = 1024
