package reports

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
)

// Repository runs the read-only aggregate queries behind the dashboard.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ActiveMemberCount counts members whose membership covers the given date.
func (r *Repository) ActiveMemberCount(ctx context.Context, asOf dbtypes.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("active_until IS NOT NULL AND active_until >= ?", asOf).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting active members: %w", err)
	}
	return count, nil
}

// MembersPerPackage groups active members by the package on their most
// recent invoice. Lapsed members and members with no invoices do not appear.
func (r *Repository) MembersPerPackage(ctx context.Context, asOf dbtypes.Date) ([]PackageDistributionDTO, error) {
	rows := []PackageDistributionDTO{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS package_id, p.name AS package_name, COUNT(*) AS member_count
		FROM (
			SELECT DISTINCT ON (i.member_id) i.member_id, i.package_id
			FROM invoices i
			JOIN members m ON m.id = i.member_id
			WHERE m.active_until IS NOT NULL AND m.active_until >= ?
			ORDER BY i.member_id, i.created_at DESC, i.id DESC
		) latest
		JOIN packages p ON p.id = latest.package_id
		GROUP BY p.id, p.name
		ORDER BY member_count DESC, p.name ASC`, asOf).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("grouping members per package: %w", err)
	}
	return rows, nil
}
