// Package gcp retrieves and renders IAM role bindings for a Google Cloud
// project.
//
// The reporter is a single request/response flow: fetch the project's IAM
// policy through the Resource Manager API, flatten each binding into a
// (role, members, resource) row, and hand the rows to a renderer.
// Pagination and retries are left entirely to the client library.
package gcp

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/iam/apiv1/iampb"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Binding is one flattened row of the audit report: a role, the
// principals bound to it, and the resource the policy was fetched from.
// Rows are produced fresh per invocation and never mutated.
type Binding struct {
	Role     string   `json:"role" yaml:"role"`
	Members  []string `json:"members" yaml:"members"`
	Resource string   `json:"resource" yaml:"resource"`
}

// PolicyClient is the subset of resourcemanager.ProjectsClient the
// reporter needs. Tests substitute a fake.
type PolicyClient interface {
	GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest, opts ...gax.CallOption) (*iampb.Policy, error)
}

// RemoteAccessError reports a failure while talking to the cloud
// provider. The provider's error text is surfaced verbatim; nothing is
// retried.
type RemoteAccessError struct {
	Op  string
	Err error
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteAccessError) Unwrap() error {
	return e.Err
}

// NewProjectsClient dials the Resource Manager API using the given
// service account key file.
func NewProjectsClient(ctx context.Context, credentialsPath string) (*resourcemanager.ProjectsClient, error) {
	client, err := resourcemanager.NewProjectsClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, &RemoteAccessError{Op: "create resource manager client", Err: err}
	}
	return client, nil
}

// Reporter audits the IAM policy of a project.
type Reporter struct {
	client PolicyClient
	logger *slog.Logger
}

// NewReporter returns a Reporter backed by the given policy client.
func NewReporter(client PolicyClient, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{client: client, logger: logger}
}

// Audit fetches the IAM policy for the project and flattens it into one
// row per role binding, preserving the order returned by the API.
func (r *Reporter) Audit(ctx context.Context, projectID string) ([]Binding, error) {
	resource := "projects/" + projectID

	r.logger.Debug("fetching IAM policy", "resource", resource)

	policy, err := r.client.GetIamPolicy(ctx, &iampb.GetIamPolicyRequest{Resource: resource})
	if err != nil {
		if s, ok := status.FromError(err); ok {
			switch s.Code() {
			case codes.PermissionDenied:
				r.logger.Error("permission denied, the service account needs roles/viewer on the project", "resource", resource)
			case codes.Unauthenticated:
				r.logger.Error("authentication failed, check the service account credentials", "resource", resource)
			case codes.NotFound:
				r.logger.Error("project not found", "resource", resource)
			}
		}
		return nil, &RemoteAccessError{Op: "get IAM policy for " + resource, Err: err}
	}

	bindings := make([]Binding, 0, len(policy.Bindings))
	for _, b := range policy.Bindings {
		bindings = append(bindings, Binding{
			Role:     b.Role,
			Members:  append([]string(nil), b.Members...),
			Resource: resource,
		})
	}

	r.logger.Info("fetched IAM policy", "resource", resource, "bindings", len(bindings))
	return bindings, nil
}
