package forms

const (
	shortText = 255
	longText  = 5000
	urlText   = 2048
)

// Contact validates POST /api/contact.
var Contact = MustSchema("contact",
	Field{Name: "nom", Kind: KindString, Required: true, MaxLength: shortText},
	Field{Name: "prenom", Kind: KindString, MaxLength: shortText},
	Field{Name: "email", Kind: KindString, Required: true, Format: "email", MaxLength: shortText},
	Field{Name: "sujet", Kind: KindString, MaxLength: shortText},
	Field{Name: "message", Kind: KindString, Required: true, MaxLength: longText},
)

// Sentinelle validates POST /api/sentinelles.
var Sentinelle = MustSchema("sentinelle",
	Field{Name: "prenom", Kind: KindString, Required: true, MaxLength: shortText},
	Field{Name: "nom", Kind: KindString, Required: true, MaxLength: shortText},
	Field{Name: "email", Kind: KindString, Required: true, Format: "email", MaxLength: shortText},
	Field{Name: "telephone", Kind: KindString, MaxLength: 64},
)

// Recolte validates POST /api/recoltes. sentinelle_id must look like an id
// but is not looked up.
var Recolte = MustSchema("recolte",
	Field{Name: "sentinelle_id", Kind: KindInteger, Required: true, Min: bound(1)},
	Field{Name: "plante", Kind: KindString, Required: true, MaxLength: shortText},
	Field{Name: "date_heure", Kind: KindString, MaxLength: 64},
	Field{Name: "latitude", Kind: KindNumber, Min: bound(-90), Max: bound(90)},
	Field{Name: "longitude", Kind: KindNumber, Min: bound(-180), Max: bound(180)},
	Field{Name: "photo_url", Kind: KindString, MaxLength: urlText},
	Field{Name: "etat_plante", Kind: KindString, MaxLength: shortText},
	Field{Name: "commentaire", Kind: KindString, MaxLength: longText},
)

// LabTest validates POST /api/lab-tests.
var LabTest = MustSchema("lab_test",
	Field{Name: "lot_id", Kind: KindString, Required: true, MaxLength: shortText},
	Field{Name: "ph_value", Kind: KindNumber, Required: true, Min: bound(0), Max: bound(14)},
	Field{Name: "jour_maceration", Kind: KindInteger, Min: bound(0)},
	Field{Name: "temperature", Kind: KindNumber, Min: bound(-50), Max: bound(150)},
	Field{Name: "technicien", Kind: KindString, MaxLength: shortText},
)
