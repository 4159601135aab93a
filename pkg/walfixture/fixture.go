package walfixture

import intfixture "github.com/backbone81/wal-fixtures/internal/fixture"

// Writer provides functionality for appending entries to a single fixture file.
//
// Instances of Writer are NOT safe to use concurrently. You need to provide external synchronization.
type Writer = intfixture.Writer

// CreateFixtureConfig is the configuration required for a call to CreateFixture.
type CreateFixtureConfig = intfixture.CreateFixtureConfig

// CreateFixture creates a new fixture file in the given directory, named after the current timestamp.
var CreateFixture = intfixture.CreateFixture

// Reader provides functionality for reading the entries of a single fixture file one after the other.
type Reader = intfixture.Reader

// OpenFixture creates a new reader for the fixture file at the given path.
var OpenFixture = intfixture.OpenFixture

// ReadFixture reads all entries of the fixture file at the given path.
var ReadFixture = intfixture.ReadFixture

// GetFixtures returns the timestamps of all fixture files in the directory in ascending order.
var GetFixtures = intfixture.GetFixtures

// FilePath returns the path of the fixture created at the given timestamp within the directory.
var FilePath = intfixture.FilePath

var (
	ErrEntryNone      = intfixture.ErrEntryNone
	ErrTimestampOrder = intfixture.ErrTimestampOrder
)
