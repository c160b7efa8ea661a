package employees

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListActive returns active employees with their skills, ordered by name.
func (r *PGRepo) ListActive(ctx context.Context) ([]Employee, error) {
	const query = `
SELECT e.id, e.name, e.title, e.seniority_level, e.hourly_rate, e.availability_percentage,
       s.skill_name, s.proficiency, s.years_experience, s.is_primary
FROM employees e
LEFT JOIN employee_skills s ON s.employee_id = e.id
WHERE e.is_active = TRUE
ORDER BY e.name ASC, s.skill_name ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*Employee)
	order := make([]string, 0)

	for rows.Next() {
		var (
			id, name, title, seniority string
			rate, availability         float64
			skillName                  sql.NullString
			proficiency                sql.NullInt64
			years                      sql.NullFloat64
			isPrimary                  sql.NullBool
		)
		if err := rows.Scan(&id, &name, &title, &seniority, &rate, &availability,
			&skillName, &proficiency, &years, &isPrimary); err != nil {
			return nil, err
		}

		e, ok := byID[id]
		if !ok {
			e = &Employee{
				ID:           id,
				Name:         name,
				Title:        title,
				Seniority:    ParseSeniority(seniority),
				HourlyRate:   rate,
				Availability: availability,
				Active:       true,
			}
			byID[id] = e
			order = append(order, id)
		}
		if skillName.Valid {
			e.Skills = append(e.Skills, Skill{
				Name:            skillName.String,
				Proficiency:     int(proficiency.Int64),
				YearsExperience: years.Float64,
				IsPrimary:       isPrimary.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Employee, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

// Seed inserts the given employees and their skills, skipping IDs that
// already exist. Used by the migrate command to populate a fresh database.
func (r *PGRepo) Seed(ctx context.Context, pool []Employee) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertEmployee = `
INSERT INTO employees (id, name, title, seniority_level, hourly_rate, availability_percentage, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`
	const insertSkill = `
INSERT INTO employee_skills (employee_id, skill_name, proficiency, years_experience, is_primary)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (employee_id, skill_name) DO NOTHING`

	for _, e := range pool {
		res, err := tx.ExecContext(ctx, insertEmployee,
			e.ID, e.Name, e.Title, e.Seniority.String(), e.HourlyRate, e.Availability, e.Active)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			continue
		}
		for _, s := range e.Skills {
			if _, err := tx.ExecContext(ctx, insertSkill,
				e.ID, s.Name, s.Proficiency, s.YearsExperience, s.IsPrimary); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Count returns the number of employee rows.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
