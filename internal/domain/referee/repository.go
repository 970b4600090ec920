package referee

import "context"

type Repository interface {
	// EnsureRole creates the role if it is not yet known. Existing roles
	// keep their stored names.
	EnsureRole(ctx context.Context, r Role) error
	// Upsert creates the referee link or reassigns its person ref.
	Upsert(ctx context.Context, ref Referee) error
	// UpsertAssignment is keyed on (match, referee, role); repeated imports
	// refresh the status rather than duplicating the appointment.
	UpsertAssignment(ctx context.Context, a Assignment) error
}
