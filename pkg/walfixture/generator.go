package walfixture

import (
	intdictionary "github.com/backbone81/wal-fixtures/internal/dictionary"
	intgenerator "github.com/backbone81/wal-fixtures/internal/generator"
)

// KeyValue is a single key/value pair to turn into an entry.
type KeyValue = intgenerator.KeyValue

// Result describes a fixture file written by a run driver.
type Result = intgenerator.Result

// FixedConfig is the configuration required for a call to RunFixed.
type FixedConfig = intgenerator.FixedConfig

// RunFixed writes every configured entry into its own fixture file.
var RunFixed = intgenerator.RunFixed

// PaddedConfig is the configuration required for a call to RunPadded.
type PaddedConfig = intgenerator.PaddedConfig

// RunPadded writes a single fixture file padded with dictionary words up to a size threshold.
var RunPadded = intgenerator.RunPadded

// Dictionary is the source of words for padding entries.
type Dictionary = intdictionary.Dictionary

// NewWordList creates a seeded dictionary from a list of words.
var NewWordList = intdictionary.NewWordList

// LoadDictionary reads a word list from a JSON object, a JSON array or a file with one word per line.
var LoadDictionary = intdictionary.LoadDictionary

// DefaultWords is a small built-in list of English words.
var DefaultWords = intdictionary.DefaultWords
