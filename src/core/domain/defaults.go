package domain

// DefaultMaxBatchSize bounds how many identifiers one grouping request may carry.
const DefaultMaxBatchSize = 1000

// MaxDomainNameLength is the longest raw domain name accepted for registration.
const MaxDomainNameLength = 253

// MaxDisplayNameLength is the longest provider display name accepted.
const MaxDisplayNameLength = 128
