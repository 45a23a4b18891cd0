package breeds

// Registro estático de perfiles de salud por raza. Se carga una vez y no se
// muta en runtime. Las variantes de patrón (tabby, calico, tuxedo, etc.) son
// aliases del Domestic Shorthair y comparten su set de riesgos por referencia.

const defaultIdx = 0

// Set genérico compartido por los gatos domésticos sin raza definida.
var genericRisks = []HealthRisk{
	{
		Condition:     "Obesity",
		Level:         RiskModerate,
		OnsetAgeYears: 4,
		Monitoring:    "Monthly weight checks at home; body condition score at every vet visit",
		Symptoms:      []string{"weight gain", "reduced activity", "difficulty grooming"},
	},
	{
		Condition:     "Dental disease",
		Level:         RiskModerate,
		OnsetAgeYears: 3,
		Monitoring:    "Annual dental exam; watch for bad breath or drooling",
		Symptoms:      []string{"bad breath", "drooling", "dropping food"},
	},
	{
		Condition:     "Chronic kidney disease",
		Level:         RiskModerate,
		OnsetAgeYears: 10,
		Monitoring:    "Bloodwork and urinalysis yearly from age 7, twice yearly from age 10",
		Symptoms:      []string{"increased thirst", "weight loss", "poor coat"},
	},
	{
		Condition:     "Hyperthyroidism",
		Level:         RiskLow,
		OnsetAgeYears: 10,
		Monitoring:    "Thyroid panel with senior bloodwork",
		Symptoms:      []string{"weight loss despite appetite", "restlessness", "vomiting"},
	},
}

var genericScreenings = []Screening{
	{AgeYears: 1, Screenings: []string{"Baseline bloodwork", "Dental check"}, Reason: "Establish healthy adult baselines"},
	{AgeYears: 7, Screenings: []string{"Senior bloodwork", "Blood pressure", "Urinalysis"}, Reason: "Early detection of kidney and thyroid changes"},
	{AgeYears: 10, Screenings: []string{"Full senior panel", "Thyroid panel"}, Reason: "Kidney and thyroid disease become common past 10"},
	{AgeYears: 13, Screenings: []string{"Twice-yearly senior panel", "Arthritis assessment"}, Reason: "Geriatric cats decline quickly between checkups"},
}

var genericAdvice = []AdviceBand{
	{FromYears: 0, ToYears: 2, Focus: "growth and socialization", Advice: []string{
		"Feed a kitten-formulated diet until 12 months",
		"Complete the core vaccination series",
		"Get your cat used to carrier, brushing, and nail trims early",
	}},
	{FromYears: 2, ToYears: 7, Focus: "weight and dental care", Advice: []string{
		"Measure food portions rather than free-feeding",
		"Aim for at least 20 minutes of active play per day",
		"Start a tooth-brushing routine or dental treats",
	}},
	{FromYears: 7, ToYears: 12, Focus: "early senior screening", Advice: []string{
		"Switch to twice-yearly vet visits",
		"Watch water intake; increased thirst warrants bloodwork",
		"Keep weight stable; unexplained loss is a red flag",
	}},
	{FromYears: 12, ToYears: 21, Focus: "comfort and mobility", Advice: []string{
		"Provide low-entry litter boxes and warm resting spots",
		"Consider joint supplements if stiffness appears",
		"Twice-yearly senior panels to track kidney and thyroid values",
	}},
}

var profiles = []Profile{
	{
		Name: DefaultBreedName, // Domestic Shorthair
		Aliases: []string{
			"dsh", "domestic", "domestic short hair", "moggy", "mixed", "mixed breed",
			"tabby", "calico", "tuxedo", "tortoiseshell", "orange tabby", "black cat",
			"house cat", "alley cat", "unknown",
		},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 13, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 3.5, MaxKg: 5.5},
		Risks:          genericRisks,
		Screenings:     genericScreenings,
		AdviceBands:    genericAdvice,
	},
	{
		Name:           "Domestic Longhair",
		Aliases:        []string{"dlh", "domestic long hair", "longhair mix", "fluffy mix"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 13, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 3.5, MaxKg: 6.0},
		Risks:          genericRisks,
		Screenings:     genericScreenings,
		AdviceBands:    genericAdvice,
	},
	{
		Name:           "Maine Coon",
		Aliases:        []string{"mainecoon", "maine-coon", "coon cat"},
		Size:           SizeLarge,
		LifeExpectancy: LifeExpectancy{MinYears: 10, MaxYears: 13},
		IdealWeight:    WeightRange{MinKg: 5.9, MaxKg: 8.2},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskHigh,
				OnsetAgeYears: 4,
				Monitoring:    "Echocardiogram every 1-2 years from age 3; genetic test (MYBPC3) available",
				Symptoms:      []string{"rapid breathing", "lethargy", "open-mouth breathing"},
			},
			{
				Condition:     "Hip dysplasia",
				Level:         RiskModerate,
				OnsetAgeYears: 6,
				Monitoring:    "Watch for reluctance to jump; X-rays if gait changes",
				Symptoms:      []string{"limping", "reluctance to jump", "stiffness after rest"},
			},
			{
				Condition:     "Spinal muscular atrophy",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Genetic test; signs appear in kittens 3-4 months old",
				Symptoms:      []string{"swaying gait", "muscle weakness in hindquarters"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 3, Screenings: []string{"Echocardiogram", "Cardiac auscultation"}, Reason: "HCM is the leading cause of early death in Maine Coons"},
			{AgeYears: 6, Screenings: []string{"Echocardiogram", "Hip X-rays"}, Reason: "Repeat cardiac screening; hip dysplasia onset window"},
			{AgeYears: 9, Screenings: []string{"Senior bloodwork", "Echocardiogram", "Blood pressure"}, Reason: "Large breeds age faster; combined cardiac and renal check"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "slow growth", Advice: []string{
				"Maine Coons mature until age 4; avoid overfeeding during growth",
				"Book a baseline echocardiogram around age 1-2",
			}},
			{FromYears: 2, ToYears: 7, Focus: "cardiac monitoring", Advice: []string{
				"Keep up regular echocardiograms; HCM can be silent",
				"Large frames hide weight gain; weigh monthly",
			}},
			{FromYears: 7, ToYears: 11, Focus: "joints and heart", Advice: []string{
				"Add ramps or steps to favorite perches",
				"Twice-yearly vet visits with cardiac auscultation",
			}},
			{FromYears: 11, ToYears: 21, Focus: "senior comfort", Advice: []string{
				"Soft bedding and joint supplements for large, heavy frames",
				"Monitor breathing rate at rest (under 30 breaths/min)",
			}},
		},
	},
	{
		Name:           "Persian",
		Aliases:        []string{"persian longhair", "shirazi"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 3.2, MaxKg: 5.5},
		Risks: []HealthRisk{
			{
				Condition:     "Polycystic kidney disease (PKD)",
				Level:         RiskHigh,
				OnsetAgeYears: 7,
				Monitoring:    "Kidney ultrasound by age 2; genetic test available; yearly renal panel",
				Symptoms:      []string{"increased thirst", "weight loss", "vomiting"},
			},
			{
				Condition:     "Brachycephalic airway issues",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Watch breathing effort in heat or stress; keep weight lean",
				Symptoms:      []string{"noisy breathing", "snoring", "exercise intolerance"},
			},
			{
				Condition:     "Eye discharge and entropion",
				Level:         RiskModerate,
				OnsetAgeYears: 1,
				Monitoring:    "Daily face cleaning; vet check if squinting persists",
				Symptoms:      []string{"tear staining", "squinting", "eye rubbing"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 2, Screenings: []string{"Kidney ultrasound", "PKD genetic test"}, Reason: "PKD cysts are detectable years before symptoms"},
			{AgeYears: 7, Screenings: []string{"Renal panel", "Blood pressure", "Urinalysis"}, Reason: "Typical PKD onset age; hypertension follows kidney disease"},
			{AgeYears: 10, Screenings: []string{"Full senior panel", "Kidney ultrasound"}, Reason: "Track cyst progression and kidney function"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "grooming habits", Advice: []string{
				"Daily brushing from kittenhood to prevent matting",
				"Clean facial folds daily to avoid skin infection",
			}},
			{FromYears: 2, ToYears: 7, Focus: "kidney baseline", Advice: []string{
				"Get the PKD ultrasound done if not already",
				"Encourage water intake with fountains or wet food",
			}},
			{FromYears: 7, ToYears: 12, Focus: "renal monitoring", Advice: []string{
				"Yearly renal panels even if asymptomatic",
				"Weigh monthly; PKD weight loss is gradual",
			}},
			{FromYears: 12, ToYears: 21, Focus: "kidney support", Advice: []string{
				"Discuss renal diets with your vet",
				"Twice-yearly bloodwork and blood pressure checks",
			}},
		},
	},
	{
		Name:           "Siamese",
		Aliases:        []string{"siamese cat", "meezer", "traditional siamese", "applehead"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 15, MaxYears: 20},
		IdealWeight:    WeightRange{MinKg: 2.5, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Feline asthma",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Note coughing or wheezing episodes; chest X-rays if recurrent",
				Symptoms:      []string{"coughing", "wheezing", "hunched breathing posture"},
			},
			{
				Condition:     "Amyloidosis (liver)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Liver values on yearly bloodwork",
				Symptoms:      []string{"lethargy", "jaundice", "poor appetite"},
			},
			{
				Condition:     "Dental disease",
				Level:         RiskModerate,
				OnsetAgeYears: 3,
				Monitoring:    "Yearly dental exams; Siamese are prone to early tartar",
				Symptoms:      []string{"bad breath", "red gums", "dropping food"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 2, Screenings: []string{"Baseline chest auscultation", "Dental check"}, Reason: "Asthma onset is typically young-adult"},
			{AgeYears: 5, Screenings: []string{"Liver panel", "Dental cleaning assessment"}, Reason: "Amyloidosis window; dental disease accelerates"},
			{AgeYears: 10, Screenings: []string{"Senior panel", "Blood pressure"}, Reason: "Long-lived breed; senior issues arrive late but surely"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "enrichment", Advice: []string{
				"Siamese need social interaction; plan daily play sessions",
				"Puzzle feeders channel their energy",
			}},
			{FromYears: 2, ToYears: 8, Focus: "airway and teeth", Advice: []string{
				"Use dust-free litter to reduce asthma triggers",
				"Brush teeth regularly; this breed tartars early",
			}},
			{FromYears: 8, ToYears: 14, Focus: "organ screening", Advice: []string{
				"Yearly liver and kidney panels",
				"Keep weight lean; small frames suffer more from extra kilos",
			}},
			{FromYears: 14, ToYears: 21, Focus: "graceful aging", Advice: []string{
				"Many Siamese reach 18-20; keep twice-yearly checkups",
				"Watch for vocalization changes that may signal hypertension",
			}},
		},
	},
	{
		Name:           "Ragdoll",
		Aliases:        []string{"ragdoll cat", "raggie"},
		Size:           SizeLarge,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 4.5, MaxKg: 9.0},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskHigh,
				OnsetAgeYears: 5,
				Monitoring:    "Genetic test (MYBPC3 R820W); echocardiogram every 2 years from age 3",
				Symptoms:      []string{"rapid breathing", "lethargy", "fainting"},
			},
			{
				Condition:     "Bladder stones",
				Level:         RiskModerate,
				OnsetAgeYears: 4,
				Monitoring:    "Urinalysis yearly; watch litter box habits",
				Symptoms:      []string{"straining to urinate", "blood in urine", "frequent small urinations"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 3, Screenings: []string{"Echocardiogram", "HCM genetic test"}, Reason: "Ragdolls carry a breed-specific HCM mutation"},
			{AgeYears: 6, Screenings: []string{"Echocardiogram", "Urinalysis"}, Reason: "Repeat cardiac check; bladder stone window"},
			{AgeYears: 10, Screenings: []string{"Senior panel", "Echocardiogram"}, Reason: "Combined senior and cardiac monitoring"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "indoor safety", Advice: []string{
				"Ragdolls go limp when handled; keep them indoors",
				"Slow maturation; adult coat and size by age 4",
			}},
			{FromYears: 2, ToYears: 7, Focus: "heart checks", Advice: []string{
				"Do the HCM genetic test if the breeder didn't",
				"Weigh monthly; the plush coat hides weight changes",
			}},
			{FromYears: 7, ToYears: 12, Focus: "urinary health", Advice: []string{
				"Encourage water intake to prevent stones",
				"Yearly urinalysis alongside senior bloodwork",
			}},
			{FromYears: 12, ToYears: 21, Focus: "senior comfort", Advice: []string{
				"Large seniors need easy access to food and litter",
				"Monitor resting breathing rate for cardiac changes",
			}},
		},
	},
	{
		Name:           "Bengal",
		Aliases:        []string{"bengal cat", "leopard cat mix"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 16},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 6.8},
		Risks: []HealthRisk{
			{
				Condition:     "Progressive retinal atrophy (PRA)",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Genetic test (PRA-b); watch night-time navigation",
				Symptoms:      []string{"night blindness", "dilated pupils", "bumping into objects"},
			},
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 4,
				Monitoring:    "Echocardiogram every 2 years from age 3",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Patellar luxation",
				Level:         RiskLow,
				OnsetAgeYears: 3,
				Monitoring:    "Watch for skipping gait or sudden lameness",
				Symptoms:      []string{"skipping steps", "intermittent lameness"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 1, Screenings: []string{"PRA genetic test", "Baseline exam"}, Reason: "PRA-b appears in young Bengals"},
			{AgeYears: 4, Screenings: []string{"Echocardiogram"}, Reason: "HCM screening in the typical onset window"},
			{AgeYears: 8, Screenings: []string{"Senior bloodwork", "Echocardiogram"}, Reason: "Combined senior and cardiac check"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "high energy", Advice: []string{
				"Bengals need 30+ minutes of vigorous play daily",
				"Provide climbing space; boredom becomes destruction",
			}},
			{FromYears: 2, ToYears: 8, Focus: "activity and heart", Advice: []string{
				"Keep the play routine; this breed gains weight when bored",
				"Schedule cardiac screening alongside annual visits",
			}},
			{FromYears: 8, ToYears: 13, Focus: "slowing down", Advice: []string{
				"Adjust portions as activity declines",
				"Yearly senior bloodwork from age 8",
			}},
			{FromYears: 13, ToYears: 21, Focus: "senior care", Advice: []string{
				"Keep gentle play for joint health",
				"Twice-yearly vet visits",
			}},
		},
	},
	{
		Name:           "Sphynx",
		Aliases:        []string{"sphinx", "hairless cat", "canadian sphynx"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 9, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 3.0, MaxKg: 5.0},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskHigh,
				OnsetAgeYears: 6,
				Monitoring:    "Yearly echocardiogram from age 2; highest HCM prevalence of any breed",
				Symptoms:      []string{"rapid breathing", "lethargy", "fainting"},
			},
			{
				Condition:     "Skin infections and oil buildup",
				Level:         RiskModerate,
				OnsetAgeYears: 1,
				Monitoring:    "Weekly baths; check skin folds for redness",
				Symptoms:      []string{"greasy skin", "redness", "odor"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 2, Screenings: []string{"Echocardiogram"}, Reason: "Early baseline for the highest-risk HCM breed"},
			{AgeYears: 4, Screenings: []string{"Echocardiogram"}, Reason: "Yearly-to-biennial cardiac follow-up"},
			{AgeYears: 8, Screenings: []string{"Echocardiogram", "Senior bloodwork"}, Reason: "Cardiac plus senior organ screening"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "skin and warmth", Advice: []string{
				"Weekly baths to manage skin oils",
				"Provide warm bedding; hairless cats chill easily",
			}},
			{FromYears: 2, ToYears: 6, Focus: "cardiac vigilance", Advice: []string{
				"Do not skip echocardiograms in this breed",
				"High metabolism needs quality calories, not more treats",
			}},
			{FromYears: 6, ToYears: 10, Focus: "heart and skin", Advice: []string{
				"Continue yearly cardiac checks",
				"Watch for sun exposure if near windows",
			}},
			{FromYears: 10, ToYears: 21, Focus: "senior support", Advice: []string{
				"Twice-yearly full checkups",
				"Keep ambient temperature stable for comfort",
			}},
		},
	},
	{
		Name:           "British Shorthair",
		Aliases:        []string{"british blue", "bsh", "british short hair"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 4.0, MaxKg: 7.7},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 4",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Polycystic kidney disease (PKD)",
				Level:         RiskLow,
				OnsetAgeYears: 7,
				Monitoring:    "Kidney ultrasound once; yearly renal values from age 7",
				Symptoms:      []string{"increased thirst", "weight loss"},
			},
			{
				Condition:     "Obesity",
				Level:         RiskHigh,
				OnsetAgeYears: 3,
				Monitoring:    "Strict portion control; this breed is sedentary by nature",
				Symptoms:      []string{"weight gain", "loss of waistline", "reduced grooming"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 4, Screenings: []string{"Echocardiogram", "Weight and body condition review"}, Reason: "Cardiac baseline plus obesity check in a sedentary breed"},
			{AgeYears: 7, Screenings: []string{"Renal panel", "Kidney ultrasound"}, Reason: "PKD onset window"},
			{AgeYears: 10, Screenings: []string{"Senior panel", "Blood pressure"}, Reason: "Standard senior screening"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "portion habits", Advice: []string{
				"Establish measured meals early; free-feeding ruins this breed",
				"Encourage play even if the cat seems content to lounge",
			}},
			{FromYears: 2, ToYears: 7, Focus: "weight control", Advice: []string{
				"Weigh monthly; obesity is the number-one British Shorthair problem",
				"Use food puzzles to slow eating and add activity",
			}},
			{FromYears: 7, ToYears: 12, Focus: "organ screening", Advice: []string{
				"Yearly renal panels and cardiac auscultation",
				"Keep joints healthy by keeping weight down",
			}},
			{FromYears: 12, ToYears: 21, Focus: "senior comfort", Advice: []string{
				"Twice-yearly checkups",
				"Arthritis is common in heavy seniors; watch jumping",
			}},
		},
	},
	{
		Name:           "Scottish Fold",
		Aliases:        []string{"scottish fold cat", "fold", "highland fold"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 11, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 6.0},
		Risks: []HealthRisk{
			{
				Condition:     "Osteochondrodysplasia",
				Level:         RiskHigh,
				OnsetAgeYears: 2,
				Monitoring:    "All folded-ear cats carry the gene; X-rays if stiffness or reluctance to move",
				Symptoms:      []string{"stiff tail", "reluctance to jump", "abnormal gait"},
			},
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskLow,
				OnsetAgeYears: 6,
				Monitoring:    "Cardiac auscultation at yearly visits",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 2, Screenings: []string{"Joint X-rays", "Mobility assessment"}, Reason: "Cartilage disease is universal in folded-ear cats"},
			{AgeYears: 6, Screenings: []string{"Mobility recheck", "Pain assessment"}, Reason: "Arthritis progression check"},
			{AgeYears: 10, Screenings: []string{"Senior panel", "Arthritis management review"}, Reason: "Senior screening with joint focus"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "joint awareness", Advice: []string{
				"Learn the early signs of cartilage disease",
				"Keep weight lean to spare the joints",
			}},
			{FromYears: 2, ToYears: 7, Focus: "mobility", Advice: []string{
				"Provide ramps; discourage high jumps",
				"Ask the vet about joint supplements early",
			}},
			{FromYears: 7, ToYears: 12, Focus: "pain management", Advice: []string{
				"Watch for subtle pain signs: less grooming, hiding",
				"Yearly mobility assessments",
			}},
			{FromYears: 12, ToYears: 21, Focus: "comfort", Advice: []string{
				"Soft bedding, low litter boxes, warmth",
				"Twice-yearly pain and senior checks",
			}},
		},
	},
	{
		Name:           "Abyssinian",
		Aliases:        []string{"aby", "abyssinian cat"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 13, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Progressive retinal atrophy (PRA)",
				Level:         RiskModerate,
				OnsetAgeYears: 3,
				Monitoring:    "Genetic test available; ophthalmologic exam if vision changes",
				Symptoms:      []string{"night blindness", "dilated pupils"},
			},
			{
				Condition:     "Pyruvate kinase deficiency",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Genetic test; watch for intermittent lethargy and pale gums",
				Symptoms:      []string{"lethargy", "pale gums", "weight loss"},
			},
			{
				Condition:     "Gingivitis",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Dental exams every visit; early cleanings",
				Symptoms:      []string{"red gums", "bad breath"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 1, Screenings: []string{"PRA and PK-deficiency genetic tests", "Dental check"}, Reason: "Both conditions are testable before symptoms"},
			{AgeYears: 5, Screenings: []string{"Dental cleaning assessment", "CBC"}, Reason: "Gingivitis progression; anemia check for PK deficiency"},
			{AgeYears: 9, Screenings: []string{"Senior panel", "Eye exam"}, Reason: "Senior baseline plus retinal check"},
		},
		AdviceBands: []AdviceBand{
			{FromYears: 0, ToYears: 2, Focus: "genetic testing", Advice: []string{
				"Do the PRA and PK genetic tests once, early",
				"Active breed: build a daily play routine",
			}},
			{FromYears: 2, ToYears: 8, Focus: "teeth and energy", Advice: []string{
				"Brush teeth; Abyssinians are gingivitis-prone",
				"Keep activity high to match their metabolism",
			}},
			{FromYears: 8, ToYears: 13, Focus: "senior onset", Advice: []string{
				"Yearly senior bloodwork",
				"Watch vision in dim light",
			}},
			{FromYears: 13, ToYears: 21, Focus: "gentle aging", Advice: []string{
				"Twice-yearly checkups",
				"Keep familiar layouts if vision declines",
			}},
		},
	},
	{
		Name:           "Russian Blue",
		Aliases:        []string{"russian blue cat", "archangel blue"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 15, MaxYears: 20},
		IdealWeight:    WeightRange{MinKg: 3.0, MaxKg: 5.5},
		Risks: []HealthRisk{
			{
				Condition:     "Obesity",
				Level:         RiskModerate,
				OnsetAgeYears: 4,
				Monitoring:    "Strong food drive; strict portions and monthly weighing",
				Symptoms:      []string{"weight gain", "begging behavior"},
			},
			{
				Condition:     "Bladder stones",
				Level:         RiskLow,
				OnsetAgeYears: 5,
				Monitoring:    "Yearly urinalysis; encourage water intake",
				Symptoms:      []string{"straining to urinate", "frequent small urinations"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Norwegian Forest Cat",
		Aliases:        []string{"wegie", "norwegian forest", "skogkatt"},
		Size:           SizeLarge,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 16},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 9.0},
		Risks: []HealthRisk{
			{
				Condition:     "Glycogen storage disease IV",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Genetic test; affected kittens show weakness by 5 months",
				Symptoms:      []string{"muscle tremors", "weakness"},
			},
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 4",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Hip dysplasia",
				Level:         RiskModerate,
				OnsetAgeYears: 6,
				Monitoring:    "Watch jumping behavior; X-rays if gait changes",
				Symptoms:      []string{"limping", "reluctance to jump"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 1, Screenings: []string{"GSD-IV genetic test"}, Reason: "One-time test clears the lifelong question"},
			{AgeYears: 4, Screenings: []string{"Echocardiogram"}, Reason: "HCM baseline"},
			{AgeYears: 8, Screenings: []string{"Senior bloodwork", "Hip X-rays if symptomatic"}, Reason: "Senior plus joint check for a heavy breed"},
		},
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Devon Rex",
		Aliases:        []string{"devon", "devon rex cat"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 9, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 2.3, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 3",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Patellar luxation",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Watch for skipping gait",
				Symptoms:      []string{"skipping steps", "intermittent lameness"},
			},
			{
				Condition:     "Hereditary myopathy",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Genetic test; signs in young cats",
				Symptoms:      []string{"head bobbing", "fatigue on exertion"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 1, Screenings: []string{"Myopathy genetic test", "Knee exam"}, Reason: "Early detection of congenital issues"},
			{AgeYears: 4, Screenings: []string{"Echocardiogram"}, Reason: "Cardiac baseline"},
			{AgeYears: 8, Screenings: []string{"Senior bloodwork", "Echocardiogram"}, Reason: "Combined senior and cardiac check"},
		},
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Cornish Rex",
		Aliases:        []string{"cornish", "cornish rex cat"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 11, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 3",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Skin sensitivity",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Thin coat burns and chills easily; check skin regularly",
				Symptoms:      []string{"redness", "greasy patches"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Oriental Shorthair",
		Aliases:        []string{"oriental", "osh"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 2.5, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Amyloidosis (liver)",
				Level:         RiskModerate,
				OnsetAgeYears: 4,
				Monitoring:    "Liver values on yearly bloodwork",
				Symptoms:      []string{"lethargy", "jaundice"},
			},
			{
				Condition:     "Dental disease",
				Level:         RiskModerate,
				OnsetAgeYears: 3,
				Monitoring:    "Yearly dental exams",
				Symptoms:      []string{"bad breath", "red gums"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Burmese",
		Aliases:        []string{"burmese cat", "european burmese"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 18},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 5.4},
		Risks: []HealthRisk{
			{
				Condition:     "Diabetes mellitus",
				Level:         RiskHigh,
				OnsetAgeYears: 8,
				Monitoring:    "Yearly glucose/fructosamine from age 6; keep weight lean",
				Symptoms:      []string{"increased thirst", "increased urination", "weight loss"},
			},
			{
				Condition:     "Hypokalemia",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Genetic test; episodes of muscle weakness in young cats",
				Symptoms:      []string{"neck drop", "weakness"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 1, Screenings: []string{"Hypokalemia genetic test"}, Reason: "One-time test in a predisposed breed"},
			{AgeYears: 6, Screenings: []string{"Glucose and fructosamine", "Weight review"}, Reason: "Pre-diabetic window; Burmese diabetes risk is 3-4x baseline"},
			{AgeYears: 10, Screenings: []string{"Senior panel", "Glucose curve if indicated"}, Reason: "Diabetes onset peaks 8-12"},
		},
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Birman",
		Aliases:        []string{"birman cat", "sacred birman", "sacred cat of burma"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 16},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 5.4},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 4",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Chronic kidney disease",
				Level:         RiskModerate,
				OnsetAgeYears: 9,
				Monitoring:    "Renal values yearly from age 7; Birmans trend higher creatinine",
				Symptoms:      []string{"increased thirst", "weight loss"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Himalayan",
		Aliases:        []string{"himmy", "himalayan persian", "colorpoint persian"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 3.2, MaxKg: 5.4},
		Risks: []HealthRisk{
			{
				Condition:     "Polycystic kidney disease (PKD)",
				Level:         RiskHigh,
				OnsetAgeYears: 7,
				Monitoring:    "Kidney ultrasound by age 2; yearly renal panel",
				Symptoms:      []string{"increased thirst", "weight loss"},
			},
			{
				Condition:     "Brachycephalic airway issues",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Watch breathing effort; keep weight lean",
				Symptoms:      []string{"noisy breathing", "snoring"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 2, Screenings: []string{"Kidney ultrasound", "PKD genetic test"}, Reason: "Same PKD lineage as the Persian"},
			{AgeYears: 7, Screenings: []string{"Renal panel", "Blood pressure"}, Reason: "PKD onset window"},
			{AgeYears: 10, Screenings: []string{"Full senior panel"}, Reason: "Standard senior screening"},
		},
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Turkish Angora",
		Aliases:        []string{"angora", "ankara cat"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 18},
		IdealWeight:    WeightRange{MinKg: 2.5, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Deafness (white coat, blue eyes)",
				Level:         RiskModerate,
				OnsetAgeYears: 1,
				Monitoring:    "BAER test for white kittens; adapt home if deaf",
				Symptoms:      []string{"no response to sounds"},
			},
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskLow,
				OnsetAgeYears: 6,
				Monitoring:    "Cardiac auscultation at yearly visits",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "American Shorthair",
		Aliases:        []string{"ash", "american short hair"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 15, MaxYears: 20},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 6.8},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 4",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Obesity",
				Level:         RiskModerate,
				OnsetAgeYears: 4,
				Monitoring:    "Portion control; stocky build hides gain",
				Symptoms:      []string{"weight gain", "reduced activity"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Exotic Shorthair",
		Aliases:        []string{"exotic", "shorthaired persian"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 3.2, MaxKg: 5.9},
		Risks: []HealthRisk{
			{
				Condition:     "Polycystic kidney disease (PKD)",
				Level:         RiskModerate,
				OnsetAgeYears: 7,
				Monitoring:    "Kidney ultrasound by age 2; yearly renal panel from 7",
				Symptoms:      []string{"increased thirst", "weight loss"},
			},
			{
				Condition:     "Brachycephalic airway issues",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Watch breathing effort in heat; keep lean",
				Symptoms:      []string{"noisy breathing", "snoring"},
			},
			{
				Condition:     "Dental crowding",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Flat faces crowd teeth; dental exams every visit",
				Symptoms:      []string{"bad breath", "difficulty chewing"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 2, Screenings: []string{"Kidney ultrasound", "Dental assessment"}, Reason: "PKD lineage plus brachycephalic dental crowding"},
			{AgeYears: 7, Screenings: []string{"Renal panel", "Blood pressure"}, Reason: "PKD onset window"},
			{AgeYears: 10, Screenings: []string{"Full senior panel"}, Reason: "Standard senior screening"},
		},
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Savannah",
		Aliases:        []string{"savannah cat", "serval mix"},
		Size:           SizeLarge,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 20},
		IdealWeight:    WeightRange{MinKg: 5.4, MaxKg: 11.0},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskLow,
				OnsetAgeYears: 5,
				Monitoring:    "Cardiac auscultation yearly; echo if murmur",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Dietary sensitivity",
				Level:         RiskModerate,
				OnsetAgeYears: 1,
				Monitoring:    "High-protein diet; watch stool quality on diet changes",
				Symptoms:      []string{"loose stool", "poor coat"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Siberian",
		Aliases:        []string{"siberian forest cat", "siberian cat"},
		Size:           SizeLarge,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 18},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 7.7},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 4",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Tonkinese",
		Aliases:        []string{"tonk", "tonkinese cat"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 13, MaxYears: 18},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 5.4},
		Risks: []HealthRisk{
			{
				Condition:     "Gingivitis",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Dental exams every visit; early cleanings",
				Symptoms:      []string{"red gums", "bad breath"},
			},
			{
				Condition:     "Feline asthma",
				Level:         RiskLow,
				OnsetAgeYears: 3,
				Monitoring:    "Note coughing episodes; dust-free litter",
				Symptoms:      []string{"coughing", "wheezing"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Manx",
		Aliases:        []string{"manx cat", "stubbin", "rumpy"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 10, MaxYears: 14},
		IdealWeight:    WeightRange{MinKg: 3.6, MaxKg: 5.4},
		Risks: []HealthRisk{
			{
				Condition:     "Manx syndrome (spinal defects)",
				Level:         RiskHigh,
				OnsetAgeYears: 1,
				Monitoring:    "Evident by 6 months; watch litter box habits and hind-leg function",
				Symptoms:      []string{"incontinence", "hopping gait", "constipation"},
			},
			{
				Condition:     "Arthritis (tailbone region)",
				Level:         RiskModerate,
				OnsetAgeYears: 7,
				Monitoring:    "Mobility checks at yearly visits",
				Symptoms:      []string{"stiffness", "reluctance to jump"},
			},
		},
		Screenings: []Screening{
			{AgeYears: 1, Screenings: []string{"Spinal exam", "Neurologic assessment"}, Reason: "Manx syndrome shows early if present"},
			{AgeYears: 7, Screenings: []string{"Senior bloodwork", "Mobility assessment"}, Reason: "Arthritis onset window"},
			{AgeYears: 10, Screenings: []string{"Full senior panel"}, Reason: "Standard senior screening"},
		},
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Chartreux",
		Aliases:        []string{"chartreux cat"},
		Size:           SizeMedium,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 3.0, MaxKg: 7.0},
		Risks: []HealthRisk{
			{
				Condition:     "Patellar luxation",
				Level:         RiskModerate,
				OnsetAgeYears: 3,
				Monitoring:    "Watch for skipping gait",
				Symptoms:      []string{"skipping steps", "intermittent lameness"},
			},
			{
				Condition:     "Struvite crystals",
				Level:         RiskLow,
				OnsetAgeYears: 4,
				Monitoring:    "Yearly urinalysis; encourage water",
				Symptoms:      []string{"straining to urinate"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Somali",
		Aliases:        []string{"somali cat", "longhaired abyssinian"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 16},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Progressive retinal atrophy (PRA)",
				Level:         RiskModerate,
				OnsetAgeYears: 3,
				Monitoring:    "Genetic test; eye exam if vision changes",
				Symptoms:      []string{"night blindness", "dilated pupils"},
			},
			{
				Condition:     "Pyruvate kinase deficiency",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Genetic test; watch for anemia signs",
				Symptoms:      []string{"lethargy", "pale gums"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Balinese",
		Aliases:        []string{"balinese cat", "longhaired siamese"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 15, MaxYears: 20},
		IdealWeight:    WeightRange{MinKg: 2.5, MaxKg: 4.5},
		Risks: []HealthRisk{
			{
				Condition:     "Feline asthma",
				Level:         RiskModerate,
				OnsetAgeYears: 2,
				Monitoring:    "Note coughing or wheezing; dust-free litter",
				Symptoms:      []string{"coughing", "wheezing"},
			},
			{
				Condition:     "Amyloidosis (liver)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Liver values on yearly bloodwork",
				Symptoms:      []string{"lethargy", "jaundice"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Egyptian Mau",
		Aliases:        []string{"mau", "egyptian mau cat"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 15},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 5.0},
		Risks: []HealthRisk{
			{
				Condition:     "Leukodystrophy",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Neurologic signs appear in kittens if present",
				Symptoms:      []string{"tremors", "incoordination"},
			},
			{
				Condition:     "Urolithiasis",
				Level:         RiskLow,
				OnsetAgeYears: 5,
				Monitoring:    "Yearly urinalysis",
				Symptoms:      []string{"straining to urinate"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Bombay",
		Aliases:        []string{"bombay cat", "parlor panther"},
		Size:           SizeSmall,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 16},
		IdealWeight:    WeightRange{MinKg: 2.7, MaxKg: 5.0},
		Risks: []HealthRisk{
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskModerate,
				OnsetAgeYears: 5,
				Monitoring:    "Echocardiogram every 2 years from age 4",
				Symptoms:      []string{"rapid breathing", "lethargy"},
			},
			{
				Condition:     "Craniofacial defect (breeding lines)",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "Evident at birth in affected lines",
				Symptoms:      []string{},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
	{
		Name:           "Turkish Van",
		Aliases:        []string{"van cat", "swimming cat"},
		Size:           SizeLarge,
		LifeExpectancy: LifeExpectancy{MinYears: 12, MaxYears: 17},
		IdealWeight:    WeightRange{MinKg: 4.5, MaxKg: 8.2},
		Risks: []HealthRisk{
			{
				Condition:     "Deafness (white coat)",
				Level:         RiskLow,
				OnsetAgeYears: 1,
				Monitoring:    "BAER test for all-white kittens",
				Symptoms:      []string{"no response to sounds"},
			},
			{
				Condition:     "Hypertrophic cardiomyopathy (HCM)",
				Level:         RiskLow,
				OnsetAgeYears: 6,
				Monitoring:    "Cardiac auscultation at yearly visits",
				Symptoms:      []string{"rapid breathing"},
			},
		},
		Screenings:  genericScreenings,
		AdviceBands: genericAdvice,
	},
}
