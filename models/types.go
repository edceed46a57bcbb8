package models

// Success messages returned by the write endpoints
const (
	MsgContactCreated    = "Message envoyé avec succès"
	MsgSentinelleCreated = "Engagement validé."
	MsgRecolteCreated    = "Récolte enregistrée avec succès."
	MsgLabTestCreated    = "Test de laboratoire enregistré avec succès."
)

// TimestampLayout matches the ISO-8601 form stored in the TEXT date columns.
// Fixed width in UTC so lexical order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Request types
//
// Optional fields are pointers so that an absent value is stored as NULL.

type ContactRequest struct {
	Nom     string  `json:"nom"`
	Prenom  *string `json:"prenom"`
	Email   string  `json:"email"`
	Sujet   *string `json:"sujet"`
	Message string  `json:"message"`
}

type SentinelleRequest struct {
	Prenom    string  `json:"prenom"`
	Nom       string  `json:"nom"`
	Email     string  `json:"email"`
	Telephone *string `json:"telephone"`
}

type RecolteRequest struct {
	SentinelleID int64    `json:"sentinelle_id"`
	Plante       string   `json:"plante"`
	DateHeure    *string  `json:"date_heure"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PhotoURL     *string  `json:"photo_url"`
	EtatPlante   *string  `json:"etat_plante"`
	Commentaire  *string  `json:"commentaire"`
}

type LabTestRequest struct {
	LotID          string   `json:"lot_id"`
	PHValue        float64  `json:"ph_value"`
	JourMaceration *int64   `json:"jour_maceration"`
	Temperature    *float64 `json:"temperature"`
	Technicien     *string  `json:"technicien"`
}

// Response types

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Started  string `json:"started"`
	Uptime   string `json:"uptime"`
}

// Domain types
//
// Every column except id is nullable in the stored schema.

type Sentinelle struct {
	ID            int64   `json:"id"`
	Prenom        *string `json:"prenom"`
	Nom           *string `json:"nom"`
	Email         *string `json:"email"`
	Telephone     *string `json:"telephone"`
	DateSignature *string `json:"date_signature"`
}

type Recolte struct {
	ID           int64    `json:"id"`
	SentinelleID *int64   `json:"sentinelle_id"`
	Plante       *string  `json:"plante"`
	DateHeure    *string  `json:"date_heure"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PhotoURL     *string  `json:"photo_url"`
	EtatPlante   *string  `json:"etat_plante"`
	Commentaire  *string  `json:"commentaire"`
}

type LabTest struct {
	ID             int64    `json:"id"`
	LotID          *string  `json:"lot_id"`
	PHValue        *float64 `json:"ph_value"`
	JourMaceration *int64   `json:"jour_maceration"`
	Temperature    *float64 `json:"temperature"`
	DateTest       *string  `json:"date_test"`
	Technicien     *string  `json:"technicien"`
}

// Error response

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
