package service

/* ==============================
   Digital Behavior Survey definitions

   One declarative table per survey variant. Each question group lists the
   response buckets whose counts must sum to the audience size. The bucket
   keys are the wire keys the legacy forms submit, kept verbatim.
============================== */

type Variant string

const (
	VariantJunior  Variant = "5-7"
	VariantMiddle  Variant = "8-10"
	VariantCollege Variant = "college"
	VariantImpact  Variant = "impact"
)

type QuestionGroup struct {
	Label string
	Keys  []string
}

type Definition struct {
	Variant Variant
	// Subject is the audience noun used in mismatch messages
	// ("students" for classroom surveys, "participants" for impact).
	Subject string
	Groups  []QuestionGroup
}

var definitions = map[Variant]Definition{
	VariantJunior: {
		Variant: VariantJunior,
		Subject: "students",
		Groups: []QuestionGroup{
			{Label: "Q1", Keys: []string{"q1_mobile", "q1_tablet", "q1_laptop", "q1_other"}},
			{Label: "Q2", Keys: []string{"q2_less1", "q2_1to3", "q2_4to6", "q2_more6"}},
			{Label: "Q4", Keys: []string{"q4_knowBetter", "q4_sometimes"}},
			{Label: "Post-Q1", Keys: []string{"p1_diary", "p1_noChange"}},
			{Label: "Post-Q2", Keys: []string{"p2_setLimits", "p2_keepScrolling", "p2_notSure"}},
			{Label: "Post-Q3", Keys: []string{"p3_pauseCheck", "p3_justDownload"}},
			{Label: "Post-Q4", Keys: []string{"p4_doneSharing", "p4_mightStill", "p4_alreadySafe"}},
		},
	},
	VariantMiddle: {
		Variant: VariantMiddle,
		Subject: "students",
		Groups: []QuestionGroup{
			{Label: "Q1", Keys: []string{"q1_acceptKnown", "q1_addNew", "q1_ignoreSometimes"}},
			{Label: "Q2", Keys: []string{"q2_unique", "q2_sameAll", "q2_simple"}},
			{Label: "Q3", Keys: []string{"q3_never", "q3_sometimes", "q3_withoutThinking"}},
			{Label: "Q4", Keys: []string{"q4_secureApp", "q4_parentPhone", "q4_dontCheck"}},
			{Label: "Post-Q1", Keys: []string{"p1_dontAccept", "p1_mightAccept", "p1_askAdult"}},
			{Label: "Post-Q2", Keys: []string{"p2_strong2FA", "p2_tryLater", "p2_complicated"}},
			{Label: "Post-Q3", Keys: []string{"p3_neverAgain", "p3_stillLearning", "p3_notBigDeal"}},
			{Label: "Post-Q4", Keys: []string{"p4_doubleCheck", "p4_askTrusted", "p4_sameBefore"}},
		},
	},
	VariantCollege: {
		Variant: VariantCollege,
		Subject: "students",
		Groups:  collegeGroups,
	},
	// The impact survey reuses the college question set for an adult audience.
	VariantImpact: {
		Variant: VariantImpact,
		Subject: "participants",
		Groups:  collegeGroups,
	},
}

var collegeGroups = []QuestionGroup{
	{Label: "Q1", Keys: []string{"q1_neverShare", "q1_sometimesAvoid", "q1_feelsNormal"}},
	{Label: "Q2", Keys: []string{"q2_blockReport", "q2_ignore", "q2_clickCuriosity"}},
	{Label: "Q3", Keys: []string{"q3_always", "q3_sometimes", "q3_rarelyNever"}},
	{Label: "Q4", Keys: []string{"q4_keepPrivate", "q4_postCarefully", "q4_postEverything"}},
	{Label: "Post-Q1", Keys: []string{"p1_verifyBefore", "p1_extraCareful", "p1_stillUnsure"}},
	{Label: "Post-Q2", Keys: []string{"p2_reportInform", "p2_ignore", "p2_notBigDeal"}},
	{Label: "Post-Q3", Keys: []string{"p3_secureSettings", "p3_startSlowly", "p3_fineAsIs"}},
	{Label: "Post-Q4", Keys: []string{"p4_morePrivate", "p4_lessPersonal", "p4_noChange"}},
}

// Lookup returns the survey definition for a variant.
func Lookup(v Variant) (Definition, bool) {
	def, ok := definitions[v]
	return def, ok
}

// VariantForClassGroup maps a presentation's class group to its survey variant.
func VariantForClassGroup(classGroup string) (Variant, bool) {
	switch classGroup {
	case string(VariantJunior), string(VariantMiddle), string(VariantCollege):
		return Variant(classGroup), true
	}
	return "", false
}
