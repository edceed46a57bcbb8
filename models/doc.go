/*
Package models defines request, response, and domain types for the API.

# Request Types

Types decoded from validated request bodies:

  - ContactRequest: nom, prenom, email, sujet, message
  - SentinelleRequest: prenom, nom, email, telephone
  - RecolteRequest: sentinelle_id, plante, date_heure, latitude, longitude,
    photo_url, etat_plante, commentaire
  - LabTestRequest: lot_id, ph_value, jour_maceration, temperature, technicien

# Response Types

  - CreatedResponse: id, message
  - HealthResponse: status, database, started, uptime
  - ErrorResponse: error, message, details

# Domain Types

Stored rows for the tables the lab dashboard reads. Contact messages are
write-only and have no row type. Nullable columns are pointers and encode
as JSON null:

  - Sentinelle (sentinelles)
  - Recolte (recoltes)
  - LabTest (lab_tests)

# Constants

Success messages:

	MsgContactCreated    = "Message envoyé avec succès"
	MsgSentinelleCreated = "Engagement validé."
	MsgRecolteCreated    = "Récolte enregistrée avec succès."
	MsgLabTestCreated    = "Test de laboratoire enregistré avec succès."

Server timestamps use TimestampLayout (UTC, millisecond precision).
*/
package models
