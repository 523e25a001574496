// Package hhpermissions provides the HH Permissions Tool, a CLI for
// auditing Google Cloud IAM permissions.
//
// # Overview
//
// The tool authenticates against Google Cloud with a service account,
// retrieves the IAM policy of a project, and prints every role binding
// as a formatted table (role, members, resource). It is strictly
// read-only: policies are listed, never modified.
//
// # Installation
//
//	go install github.com/hh-labs/hh-permissions-tool/cmd/hh-permissions@latest
//
// # Quick Start
//
//	export GOOGLE_APPLICATION_CREDENTIALS=./service-account.json
//	hh-permissions audit-gcp --project-id my-project
//	hh-permissions version
//
// Configuration is resolved from flags, environment variables
// (GOOGLE_CLOUD_PROJECT, GOOGLE_APPLICATION_CREDENTIALS, LOG_LEVEL),
// and an optional --env-file, in that order of precedence.
package hhpermissions
