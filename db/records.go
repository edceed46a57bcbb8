package db

import (
	"context"
	"fmt"

	"github.com/cbet/sentinelles/models"
)

// InsertContact stores a contact message stamped with date and returns its id.
func (s *Store) InsertContact(ctx context.Context, req models.ContactRequest, date string) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO contacts (nom, prenom, email, sujet, message, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, req.Nom, req.Prenom, req.Email, req.Sujet, req.Message, date)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// InsertSentinelle stores a volunteer engagement signed at dateSignature.
func (s *Store) InsertSentinelle(ctx context.Context, req models.SentinelleRequest, dateSignature string) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO sentinelles (prenom, nom, email, telephone, date_signature)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.Prenom, req.Nom, req.Email, req.Telephone, dateSignature)
	if err != nil {
		return 0, fmt.Errorf("insert sentinelle: %w", err)
	}
	return id, nil
}

// InsertRecolte stores a field report. sentinelle_id is not checked against
// the sentinelles table.
func (s *Store) InsertRecolte(ctx context.Context, req models.RecolteRequest) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO recoltes (sentinelle_id, plante, date_heure, latitude, longitude, photo_url, etat_plante, commentaire)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, req.SentinelleID, req.Plante, req.DateHeure, req.Latitude, req.Longitude, req.PhotoURL, req.EtatPlante, req.Commentaire)
	if err != nil {
		return 0, fmt.Errorf("insert recolte: %w", err)
	}
	return id, nil
}

// InsertLabTest stores a lab measurement taken at dateTest.
func (s *Store) InsertLabTest(ctx context.Context, req models.LabTestRequest, dateTest string) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO lab_tests (lot_id, ph_value, jour_maceration, temperature, date_test, technicien)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, req.LotID, req.PHValue, req.JourMaceration, req.Temperature, dateTest, req.Technicien)
	if err != nil {
		return 0, fmt.Errorf("insert lab test: %w", err)
	}
	return id, nil
}

// ListSentinelles returns every sentinelle, newest id first.
func (s *Store) ListSentinelles(ctx context.Context) ([]models.Sentinelle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, prenom, nom, email, telephone, date_signature
		FROM sentinelles
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sentinelles: %w", err)
	}
	defer rows.Close()

	out := []models.Sentinelle{}
	for rows.Next() {
		var r models.Sentinelle
		if err := rows.Scan(&r.ID, &r.Prenom, &r.Nom, &r.Email, &r.Telephone, &r.DateSignature); err != nil {
			return nil, fmt.Errorf("scan sentinelle: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sentinelles: %w", err)
	}

	return out, nil
}

// ListRecoltes returns every field report, newest id first.
func (s *Store) ListRecoltes(ctx context.Context) ([]models.Recolte, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sentinelle_id, plante, date_heure, latitude, longitude, photo_url, etat_plante, commentaire
		FROM recoltes
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list recoltes: %w", err)
	}
	defer rows.Close()

	out := []models.Recolte{}
	for rows.Next() {
		var r models.Recolte
		if err := rows.Scan(&r.ID, &r.SentinelleID, &r.Plante, &r.DateHeure, &r.Latitude, &r.Longitude,
			&r.PhotoURL, &r.EtatPlante, &r.Commentaire); err != nil {
			return nil, fmt.Errorf("scan recolte: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recoltes: %w", err)
	}

	return out, nil
}

// ListLabTests returns every lab test in chronological order. Tests stamped
// in the same millisecond keep insertion order.
func (s *Store) ListLabTests(ctx context.Context) ([]models.LabTest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lot_id, ph_value, jour_maceration, temperature, date_test, technicien
		FROM lab_tests
		ORDER BY date_test ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list lab tests: %w", err)
	}
	defer rows.Close()

	out := []models.LabTest{}
	for rows.Next() {
		var r models.LabTest
		if err := rows.Scan(&r.ID, &r.LotID, &r.PHValue, &r.JourMaceration, &r.Temperature, &r.DateTest, &r.Technicien); err != nil {
			return nil, fmt.Errorf("scan lab test: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lab tests: %w", err)
	}

	return out, nil
}
