package services

// User facing messages. The site is French speaking.
const (
	MsgUnauthorized      = "Accès non autorisé. Seuls les administrateurs peuvent accéder à cette page."
	MsgLoginRequired     = "Veuillez vous connecter pour accéder à cette page."
	MsgGenericError      = "Une erreur est survenue"
	MsgInvalidEmail      = "Email invalide"
	MsgPasswordTooShort  = "Le mot de passe doit contenir au moins 6 caractères"
	MsgInvalidLogin      = "Email ou mot de passe incorrect"
	MsgEmailTaken        = "Cet email est déjà enregistré"
	MsgSignedUp          = "Compte créé! Vous pouvez maintenant vous connecter."
	MsgSignedIn          = "Connexion réussie!"
	MsgSignedOut         = "Déconnexion réussie"
	MsgAlreadySignedIn   = "Vous êtes déjà connecté"
	MsgTooManyAttempts   = "Trop de tentatives, veuillez patienter quelques instants"
	MsgAccessGranted     = "Accès autorisé"
	MsgMenuList          = "Liste des articles"
	MsgNameRequired      = "Le nom est obligatoire"
	MsgInvalidPrice      = "Prix invalide"
	MsgInvalidCategory   = "Catégorie invalide"
	MsgInvalidImageURL   = "URL de l'image invalide"
	MsgInvalidAvailable  = "Disponibilité invalide"
	MsgItemCreated       = "Article ajouté avec succès!"
	MsgItemCreateFailed  = "Erreur lors de l'ajout"
	MsgItemUpdated       = "Article modifié avec succès!"
	MsgItemUpdateFailed  = "Erreur lors de la modification"
	MsgItemDeleted       = "Article supprimé!"
	MsgItemDeleteFailed  = "Erreur lors de la suppression"
	MsgConfirmDeleteItem = "Êtes-vous sûr de vouloir supprimer cet article?"
	MsgItemNotFound      = "Article introuvable"
	MsgUploadFailed      = "Erreur lors du téléchargement de l'image"
	MsgUnsupportedImage  = "Format d'image non supporté"
	MsgImageTooLarge     = "Image trop volumineuse (10 Mo maximum)"

	MsgReservationCreated       = "Réservation confirmée ! Nous vous contacterons bientôt pour confirmer votre réservation."
	MsgReservationFailed        = "Une erreur est survenue lors de la réservation."
	MsgReservationList          = "Liste des réservations"
	MsgReservationNotFound      = "Réservation introuvable"
	MsgStatusUpdated            = "Statut mis à jour"
	MsgStatusUpdateFailed       = "Erreur lors de la mise à jour du statut"
	MsgInvalidStatus            = "Statut invalide"
	MsgReservationDeleted       = "Réservation supprimée!"
	MsgReservationDeleteFailed  = "Erreur lors de la suppression de la réservation"
	MsgConfirmDeleteReservation = "Êtes-vous sûr de vouloir supprimer cette réservation?"
	MsgNameMissing              = "Le nom complet est obligatoire"
	MsgPhoneRequired            = "Le téléphone est obligatoire"
	MsgInvalidDate              = "Date invalide"
	MsgInvalidTime              = "Heure invalide"
	MsgInvalidGuests            = "Nombre de personnes invalide"
)
