// Package schemas embeds the JSON Schemas for the input documents the ranker
// consumes.
package schemas

import _ "embed"

// JobRequirements is the schema for structured job requirement documents.
//
//go:embed job_requirements.schema.json
var JobRequirements []byte

// CandidateProfiles is the schema for candidate profile batch documents.
//
//go:embed candidate_profiles.schema.json
var CandidateProfiles []byte
