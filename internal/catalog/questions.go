// Package catalog holds the build-time funnel data: the static question
// list of the pilot rubrique (automotive two-post lifts) and the candidate
// supplier set shown on the selection screen.
package catalog

import "ux-matching-be/internal/entity"

// Questions is the static questionnaire. Question 3 exposes the free-text
// "other" option.
var Questions = []entity.Question{
	{
		Id:            1,
		Title:         "Quel type de parc automobile allez-vous traiter majoritairement sur ce poste de travail ?",
		Justification: "Cette question détermine la capacité de levage nécessaire (3T, 4T, 5T ou plus) et la longueur des bras (symétriques ou asymétriques) pour assurer la stabilité des véhicules.",
		MultiSelect:   true,
		Answers: []entity.AnswerOption{
			{Id: "1-1", MainText: "Citadines et berlines compactes", SecondaryText: "Capacité standard ~3T suffisant"},
			{Id: "1-2", MainText: "Berlines, petits SUV", SecondaryText: "Polyvalence, capacité 3.2T à 3.5T"},
			{Id: "1-3", MainText: "Gros SUV, 4x4, Pick-up", SecondaryText: "Nécessite capacité 3.5T à 4T et bras renforcés"},
			{Id: "1-4", MainText: "Utilitaires légers (VUL) et fourgons", SecondaryText: "Capacité 4T à 5T indispensable"},
			{Id: "1-5", MainText: "Utilitaires rallongés et camping-cars", SecondaryText: "Capacité 5T+ et bras à longue portée"},
		},
	},
	{
		Id:            2,
		Title:         "Quelle est la configuration de votre atelier concernant la hauteur sous plafond et le passage au sol ?",
		Justification: "Le choix entre un pont 'à embase' (bosse au sol) ou 'sans embase' (arche en haut) dépend strictement de votre hauteur disponible et de votre besoin de circuler librement sous le véhicule.",
		MultiSelect:   false,
		Answers: []entity.AnswerOption{
			{Id: "2-1", MainText: "Plafond bas (< 3,80m)", SecondaryText: "Pont à embase au sol obligatoire"},
			{Id: "2-2", MainText: "Plafond haut (> 3,80m)", SecondaryText: "Pont sans embase privilégié pour un sol dégagé"},
			{Id: "2-3", MainText: "Plafond très haut (> 4,50m)", SecondaryText: "Compatible avec le levage de fourgons hauts"},
			{Id: "2-4", MainText: "Je ne suis pas sûr", SecondaryText: "Je souhaite une visite technique pour valider"},
		},
	},
	{
		Id:             3,
		Title:          "Quel est votre rythme de travail et la technologie de levage privilégiée ?",
		Justification:  "Définit le choix entre hydraulique (rapide, moins cher, peu d'entretien) et électromécanique (vis sans fin, précis, robuste, plus cher).",
		MultiSelect:    false,
		HasOtherOption: true,
		Answers: []entity.AnswerOption{
			{Id: "3-1", MainText: "Service rapide / Pneu / Freinage", SecondaryText: "Technologie Hydraulique, montée/descente rapide"},
			{Id: "3-2", MainText: "Mécanique générale standard", SecondaryText: "Hydraulique, bon compromis coût/performance"},
			{Id: "3-3", MainText: "Mécanique de précision / Moteur", SecondaryText: "Électromécanique à vis, réglage millimétrique"},
			{Id: "3-4", MainText: "Peu importe", SecondaryText: "Je privilégie le meilleur rapport qualité/prix"},
		},
	},
	{
		Id:            4,
		Title:         "Quelle importance accordez-vous à la marque et à la finition du matériel ?",
		Justification: "Permet de cibler la gamme de prix (Budget vs Premium) sans demander directement le budget, en se basant sur la durabilité attendue et l'image.",
		MultiSelect:   false,
		Answers: []entity.AnswerOption{
			{Id: "4-1", MainText: "Fonctionnel avant tout", SecondaryText: "Outil certifié et sûr au prix le plus bas"},
			{Id: "4-2", MainText: "Rapport Qualité/Prix", SecondaryText: "Matériel robuste, marque reconnue, sans options superflues"},
			{Id: "4-3", MainText: "Premium / Intensif", SecondaryText: "Marque prestigieuse, conçu pour durer 15 ans+"},
			{Id: "4-4", MainText: "Image de marque", SecondaryText: "Haut de gamme pour rassurer les clients"},
		},
	},
	{
		Id:            5,
		Title:         "De quelle alimentation électrique disposez-vous à l'emplacement futur du pont ?",
		Justification: "Critique pour le chiffrage. Le triphasé est standard pour les ponts pros ; le monophasé nécessite souvent des moteurs spécifiques plus coûteux ou moins puissants.",
		MultiSelect:   false,
		Answers: []entity.AnswerOption{
			{Id: "5-1", MainText: "Triphasé 380V/400V", SecondaryText: "Standard industriel"},
			{Id: "5-2", MainText: "Monophasé 220V/230V", SecondaryText: "Nécessite un modèle compatible ou adaptation"},
			{Id: "5-3", MainText: "Installation neuve", SecondaryText: "Je peux faire installer ce qui est recommandé"},
			{Id: "5-4", MainText: "Je ne sais pas", SecondaryText: "Nécessitera une vérification par un électricien"},
		},
	},
	{
		Id:            6,
		Title:         "Quel est l'état et l'épaisseur de votre dalle de béton à l'emplacement prévu ?",
		Justification: "La sécurité d'un pont 2 colonnes repose entièrement sur l'ancrage au sol. Une dalle insuffisante nécessite des travaux de génie civil (massifs béton) ou un châssis autoporteur coûteux.",
		MultiSelect:   false,
		Answers: []entity.AnswerOption{
			{Id: "6-1", MainText: "Dalle industrielle standard (> 20cm)", SecondaryText: "Béton C20/25 minimum, ancrage chimique possible"},
			{Id: "6-2", MainText: "Dalle fine ou ancienne (< 15cm)", SecondaryText: "Risque de devoir créer des massifs en béton"},
			{Id: "6-3", MainText: "Sol non bétonné", SecondaryText: "Terre, bitume, pavés : travaux de maçonnerie à prévoir"},
			{Id: "6-4", MainText: "Chauffage au sol présent", SecondaryText: "Pose très technique ou impossible sans plan précis"},
			{Id: "6-5", MainText: "Inconnu", SecondaryText: "Je n'ai pas les plans du bâtiment"},
		},
	},
	{
		Id:            7,
		Title:         "Où en êtes-vous dans la maturité de ce projet d'équipement ?",
		Justification: "Permet au vendeur de prioriser le dossier et de comprendre les contraintes logistiques ou de financement.",
		MultiSelect:   false,
		Answers: []entity.AnswerOption{
			{Id: "7-1", MainText: "Projet immédiat", SecondaryText: "Financement validé, besoin d'installation rapide"},
			{Id: "7-2", MainText: "Projet à court terme (1-3 mois)", SecondaryText: "En phase de comparaison des devis"},
			{Id: "7-3", MainText: "Projet de construction/rénovation", SecondaryText: "Bâtiment non fini, besoin des plans de génie civil"},
			{Id: "7-4", MainText: "Réflexion budgétaire", SecondaryText: "Je me renseigne pour un investissement futur"},
		},
	},
}
