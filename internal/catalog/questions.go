package catalog

import "github.com/duetmatch/duet/api/internal/model"

// questions is the built-in questionnaire. The slice is package data and
// must never be mutated at runtime; Questions() hands it out read-only.
var questions = []*model.Question{

	// openness
	{ID: "q1", Text: "I enjoy exploring ideas that challenge my existing beliefs.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitOpenness, Mandatory: true, Weight: 5},
	{ID: "q2", Text: "I would rather try something new than stick with what I know.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitOpenness, Weight: 4},
	{ID: "q3", Text: "Abstract or philosophical conversations bore me.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitOpenness, Weight: -3},
	{ID: "q4", Text: "I seek out art, music, or books outside my comfort zone.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitOpenness, Weight: 3},

	// conscientiousness
	{ID: "q5", Text: "I plan my week in advance and mostly stick to the plan.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitConscientiousness, Mandatory: true, Weight: 5},
	{ID: "q6", Text: "I finish what I start, even when it stops being fun.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitConscientiousness, Weight: 4},
	{ID: "q7", Text: "Deadlines tend to sneak up on me.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitConscientiousness, Weight: -3},
	{ID: "q8", Text: "I keep my living space organized.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitConscientiousness, Weight: 2},

	// extraversion
	{ID: "q9", Text: "Being around groups of people energizes me.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitExtraversion, Mandatory: true, Weight: 5},
	{ID: "q10", Text: "I am usually the one who starts conversations with strangers.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitExtraversion, Weight: 4},
	{ID: "q11", Text: "I need a lot of quiet time alone to recharge.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitExtraversion, Weight: -4},
	{ID: "q12", Text: "I enjoy being the center of attention at gatherings.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitExtraversion, Weight: 3},

	// agreeableness
	{ID: "q13", Text: "I go out of my way to avoid hurting other people's feelings.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitAgreeableness, Mandatory: true, Weight: 5},
	{ID: "q14", Text: "I find it easy to forgive people who have wronged me.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitAgreeableness, Weight: 3},
	{ID: "q15", Text: "I enjoy a good argument more than I probably should.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitAgreeableness, Weight: -3},
	{ID: "q16", Text: "People describe me as warm and considerate.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitAgreeableness, Weight: 4},

	// emotionalStability
	{ID: "q17", Text: "I stay calm under pressure.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalStability, Mandatory: true, Weight: 5},
	{ID: "q18", Text: "Small setbacks rarely ruin my day.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalStability, Weight: 4},
	{ID: "q19", Text: "I often worry about things that never end up happening.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalStability, Weight: -4},
	{ID: "q20", Text: "My mood swings noticeably from day to day.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalStability, Weight: -3},

	// emotionalIntelligence
	{ID: "q21", Text: "I can usually tell how someone feels before they say anything.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalIntelligence, Mandatory: true, Weight: 5},
	{ID: "q22", Text: "I notice when my own emotions are affecting my judgment.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalIntelligence, Weight: 4},
	{ID: "q23", Text: "I find other people's emotional reactions confusing.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalIntelligence, Weight: -3},
	{ID: "q24", Text: "I know how to comfort someone who is upset.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmotionalIntelligence, Weight: 4},

	// empathy
	{ID: "q25", Text: "When a friend is hurting, I feel it almost as if it were my own.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmpathy, Mandatory: true, Weight: 5},
	{ID: "q26", Text: "I find it easy to see a disagreement from the other side.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmpathy, Weight: 4},
	{ID: "q27", Text: "I get impatient when people dwell on their problems.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmpathy, Weight: -3},
	{ID: "q28", Text: "Stories about strangers' hardships move me deeply.", Category: model.QuestionCategoryEmotional, Kind: model.QuestionKindTrait, Trait: model.TraitEmpathy, Weight: 3},

	// communication
	{ID: "q29", Text: "I say what I need directly instead of hoping people will guess.", Category: model.QuestionCategoryCommunication, Kind: model.QuestionKindTrait, Trait: model.TraitCommunication, Mandatory: true, Weight: 5},
	{ID: "q30", Text: "I am comfortable raising difficult topics with a partner.", Category: model.QuestionCategoryCommunication, Kind: model.QuestionKindTrait, Trait: model.TraitCommunication, Weight: 4},
	{ID: "q31", Text: "I tend to bottle things up rather than talk them through.", Category: model.QuestionCategoryCommunication, Kind: model.QuestionKindTrait, Trait: model.TraitCommunication, Weight: -4},
	{ID: "q32", Text: "I am a patient listener even when I disagree.", Category: model.QuestionCategoryCommunication, Kind: model.QuestionKindTrait, Trait: model.TraitCommunication, Weight: 3},

	// trust
	{ID: "q33", Text: "I give people the benefit of the doubt until proven otherwise.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitTrust, Mandatory: true, Weight: 5},
	{ID: "q34", Text: "Once someone earns my trust, I do not keep re-testing it.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitTrust, Weight: 4},
	{ID: "q35", Text: "I check up on people to make sure they are being honest with me.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitTrust, Weight: -3},
	{ID: "q36", Text: "I believe most people mean well.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitTrust, Weight: 3},

	// independence
	{ID: "q37", Text: "I need time to pursue my own hobbies, even in a close relationship.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitIndependence, Mandatory: true, Weight: 5},
	{ID: "q38", Text: "I make major decisions on my own before asking others.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitIndependence, Weight: 3},
	{ID: "q39", Text: "I feel uneasy when a partner wants an evening to themselves.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitIndependence, Weight: -4},
	{ID: "q40", Text: "Maintaining my own friendships outside a relationship matters to me.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitIndependence, Weight: 4},

	// adventurousness
	{ID: "q41", Text: "My ideal vacation involves places I have never been.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitAdventurousness, Mandatory: true, Weight: 5},
	{ID: "q42", Text: "I will try almost any food once.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitAdventurousness, Weight: 3},
	{ID: "q43", Text: "I prefer familiar routines to spontaneous plans.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitAdventurousness, Weight: -4},
	{ID: "q44", Text: "I would move to a new city for the right opportunity.", Category: model.QuestionCategoryLifestyle, Kind: model.QuestionKindTrait, Trait: model.TraitAdventurousness, Weight: 3},

	// ambition
	{ID: "q45", Text: "I set long-term goals and measure myself against them.", Category: model.QuestionCategoryFuture, Kind: model.QuestionKindTrait, Trait: model.TraitAmbition, Mandatory: true, Weight: 5},
	{ID: "q46", Text: "Career growth is one of my top priorities right now.", Category: model.QuestionCategoryFuture, Kind: model.QuestionKindTrait, Trait: model.TraitAmbition, Weight: 4},
	{ID: "q47", Text: "I am content where I am and feel no push to achieve more.", Category: model.QuestionCategoryFuture, Kind: model.QuestionKindTrait, Trait: model.TraitAmbition, Weight: -3},
	{ID: "q48", Text: "I want a partner who pushes me to be better.", Category: model.QuestionCategoryFuture, Kind: model.QuestionKindTrait, Trait: model.TraitAmbition, Weight: 3},

	// spirituality
	{ID: "q49", Text: "Spiritual or religious practice is an important part of my life.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitSpirituality, Mandatory: true, Weight: 5},
	{ID: "q50", Text: "I feel connected to something larger than myself.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitSpirituality, Weight: 4},
	{ID: "q51", Text: "Questions about meaning and purpose rarely cross my mind.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitSpirituality, Weight: -3},
	{ID: "q52", Text: "I would want to share spiritual practices with a partner.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitSpirituality, Weight: 3},

	// traditionalism
	{ID: "q53", Text: "Family traditions and customs matter a great deal to me.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitTraditionalism, Mandatory: true, Weight: 5},
	{ID: "q54", Text: "I picture my life following a fairly conventional path.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitTraditionalism, Weight: 4},
	{ID: "q55", Text: "Rules are meant to be questioned more than followed.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitTraditionalism, Weight: -3},
	{ID: "q56", Text: "I value the way things have always been done in my family.", Category: model.QuestionCategoryValues, Kind: model.QuestionKindTrait, Trait: model.TraitTraditionalism, Weight: 3},

	// humor
	{ID: "q57", Text: "I use humor to defuse tense situations.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitHumor, Mandatory: true, Weight: 5},
	{ID: "q58", Text: "Making people laugh is one of my favorite things.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitHumor, Weight: 4},
	{ID: "q59", Text: "I find most jokes at serious moments inappropriate.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitHumor, Weight: -2},
	{ID: "q60", Text: "I can laugh at myself when I do something silly.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindTrait, Trait: model.TraitHumor, Weight: 3},

	// romance
	{ID: "q61", Text: "I enjoy planning romantic surprises for a partner.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitRomance, Mandatory: true, Weight: 5},
	{ID: "q62", Text: "Small daily gestures of affection matter more to me than grand ones.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitRomance, Weight: 3},
	{ID: "q63", Text: "Celebrating anniversaries feels like an obligation to me.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitRomance, Weight: -3},
	{ID: "q64", Text: "I believe in keeping courtship alive long after the early days.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindTrait, Trait: model.TraitRomance, Weight: 4},

	// sociability
	{ID: "q65", Text: "I want my partner and my friends to know each other well.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitSociability, Mandatory: true, Weight: 5},
	{ID: "q66", Text: "I regularly host or organize get-togethers.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitSociability, Weight: 4},
	{ID: "q67", Text: "Large social gatherings drain me more than they reward me.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitSociability, Weight: -3},
	{ID: "q68", Text: "I make new friends easily.", Category: model.QuestionCategorySocial, Kind: model.QuestionKindTrait, Trait: model.TraitSociability, Weight: 3},

	// patience
	{ID: "q69", Text: "I can wait out a disagreement until both of us are calm.", Category: model.QuestionCategoryConflict, Kind: model.QuestionKindTrait, Trait: model.TraitPatience, Mandatory: true, Weight: 5},
	{ID: "q70", Text: "I rarely raise my voice, even when provoked.", Category: model.QuestionCategoryConflict, Kind: model.QuestionKindTrait, Trait: model.TraitPatience, Weight: 4},
	{ID: "q71", Text: "I need issues resolved immediately, even mid-argument.", Category: model.QuestionCategoryConflict, Kind: model.QuestionKindTrait, Trait: model.TraitPatience, Weight: -3},
	{ID: "q72", Text: "I give people time to change instead of expecting it overnight.", Category: model.QuestionCategoryConflict, Kind: model.QuestionKindTrait, Trait: model.TraitPatience, Weight: 3},

	// intimacy
	{ID: "q73", Text: "Physical closeness is an essential part of a relationship for me.", Category: model.QuestionCategoryIntimacy, Kind: model.QuestionKindTrait, Trait: model.TraitIntimacy, Mandatory: true, Weight: 5},
	{ID: "q74", Text: "I am comfortable talking about intimacy openly with a partner.", Category: model.QuestionCategoryIntimacy, Kind: model.QuestionKindTrait, Trait: model.TraitIntimacy, Weight: 4},
	{ID: "q75", Text: "I tend to keep an emotional distance even from people I love.", Category: model.QuestionCategoryIntimacy, Kind: model.QuestionKindTrait, Trait: model.TraitIntimacy, Weight: -4},
	{ID: "q76", Text: "Deep emotional intimacy matters more to me than anything physical.", Category: model.QuestionCategoryIntimacy, Kind: model.QuestionKindTrait, Trait: model.TraitIntimacy, Weight: 3},

	// love language (scored by the declarative source table, raw answers)
	{ID: "q77", Text: "An evening of undivided attention means more to me than any gift.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q78", Text: "I feel closest to a partner when we are doing something together, just the two of us.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q79", Text: "Hearing 'I love you' and why never gets old for me.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q80", Text: "A sincere compliment from my partner can carry me through a hard week.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q81", Text: "When my partner handles a chore I dread, I feel genuinely loved.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q82", Text: "Actions that make my life easier speak louder to me than words.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q83", Text: "Holding hands or a hug says more to me than a long conversation.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q84", Text: "I feel disconnected from a partner when we go without physical affection.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q85", Text: "A thoughtful gift shows me my partner truly pays attention.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},
	{ID: "q86", Text: "I keep small presents from loved ones for years because of what they represent.", Category: model.QuestionCategoryRelationship, Kind: model.QuestionKindLoveLanguage, Weight: 1},

	// mbti and enneagram sentinels: excluded from trait aggregation
	{ID: "q87", Text: "After a demanding week, I recover best by going out, not staying in.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindMBTI, Weight: 1},
	{ID: "q88", Text: "I trust proven experience over hunches and possibilities.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindMBTI, Weight: 1},
	{ID: "q89", Text: "When making hard choices, fairness matters more to me than feelings.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindMBTI, Weight: 1},
	{ID: "q90", Text: "I like to keep my options open rather than settle things early.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindMBTI, Weight: 1},
	{ID: "q91", Text: "I hold myself to standards most people would call perfectionist.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindEnneagram, Weight: 1},
	{ID: "q92", Text: "Being needed by the people around me shapes a lot of what I do.", Category: model.QuestionCategoryPersonality, Kind: model.QuestionKindEnneagram, Weight: 1},
}
