// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import "github.com/danielhkuo/hexaco-protocol/models"

// The 60 HEXACO-60 items in presentation order. Items interleave across
// domains following the instrument's scoring key; the facet tables below
// reference them by id.
var itemDefs = []struct {
	id      int
	domain  string
	reverse bool
	text    string
}{
	{1, DomainOpenness, true, "I would find a visit to an art museum fairly boring."},
	{2, DomainConscientiousness, false, "I plan my work in advance so I'm not rushing at the last minute."},
	{3, DomainAgreeableness, false, "I rarely hold a grudge, even against people who have wronged me badly."},
	{4, DomainExtraversion, false, "On the whole, I feel good about myself."},
	{5, DomainEmotionality, false, "I would be afraid to travel in dangerous weather conditions."},
	{6, DomainHonesty, true, "If I wanted something from someone I dislike, I would act friendly just to get it."},
	{7, DomainOpenness, false, "I enjoy learning about the history and politics of other countries."},
	{8, DomainConscientiousness, false, "I push myself very hard when trying to reach a goal."},
	{9, DomainAgreeableness, true, "People sometimes tell me that I'm too critical of others."},
	{10, DomainExtraversion, true, "I rarely share my opinion in group meetings."},
	{11, DomainEmotionality, false, "I sometimes can't stop worrying about small problems."},
	{12, DomainHonesty, true, "If I knew I could never be caught, I would be willing to steal a large sum of money."},
	{13, DomainOpenness, true, "I don't think of myself as the artistic or creative type."},
	{14, DomainConscientiousness, false, "When working on something, I pay attention to every small detail."},
	{15, DomainAgreeableness, true, "People sometimes say that I'm too stubborn."},
	{16, DomainExtraversion, true, "I prefer jobs where I can work alone rather than with other people."},
	{17, DomainEmotionality, false, "When I'm going through a hard time, I need support from my friends."},
	{18, DomainHonesty, false, "Having a lot of money is not especially important to me."},
	{19, DomainOpenness, true, "I think that paying attention to radical, unconventional ideas is a waste of time."},
	{20, DomainConscientiousness, true, "I make decisions based on the feeling of the moment rather than on careful thought."},
	{21, DomainAgreeableness, true, "People think of me as someone who has a quick temper."},
	{22, DomainExtraversion, false, "Most days I feel cheerful and optimistic."},
	{23, DomainEmotionality, false, "I feel like crying when I see other people crying."},
	{24, DomainHonesty, false, "I am an ordinary person, no better than others."},
	{25, DomainOpenness, true, "I wouldn't spend my free time reading a book of poetry."},
	{26, DomainConscientiousness, false, "I keep my belongings neat and organized."},
	{27, DomainAgreeableness, false, "My attitude toward people who have treated me badly is to forgive and forget."},
	{28, DomainExtraversion, false, "I think that most people like some aspects of my personality."},
	{29, DomainEmotionality, true, "I don't mind doing jobs that involve dangerous work."},
	{30, DomainHonesty, false, "I wouldn't use flattery to get a raise or a promotion, even if I thought it would work."},
	{31, DomainOpenness, false, "I enjoy looking at maps of different places."},
	{32, DomainConscientiousness, false, "I often do more than what's required of me, simply because I enjoy working hard."},
	{33, DomainAgreeableness, false, "I tend to be lenient in judging other people."},
	{34, DomainExtraversion, false, "In social situations, I'm usually the one who makes the first move."},
	{35, DomainEmotionality, true, "I worry a lot less than most people do."},
	{36, DomainHonesty, true, "I would be tempted to buy stolen property if it were cheap enough."},
	{37, DomainOpenness, false, "People have often told me that I have a good imagination."},
	{38, DomainConscientiousness, true, "When working, I don't pay much attention to small details."},
	{39, DomainAgreeableness, false, "I am usually quite flexible in my opinions when people disagree with me."},
	{40, DomainExtraversion, false, "The first thing I always do in a new place is to make friends."},
	{41, DomainEmotionality, true, "I can handle difficult situations without needing emotional support from anyone else."},
	{42, DomainHonesty, true, "I would like to live in a very expensive, high-class neighborhood."},
	{43, DomainOpenness, false, "I like people who have unconventional views."},
	{44, DomainConscientiousness, true, "I make a lot of mistakes because I don't think before I act."},
	{45, DomainAgreeableness, false, "Most people tend to get angry more quickly than I do."},
	{46, DomainExtraversion, false, "On most days, I feel full of energy."},
	{47, DomainEmotionality, false, "When someone I know well is unhappy, I can almost feel that person's pain myself."},
	{48, DomainHonesty, false, "I wouldn't want people to treat me as though I were superior to them."},
	{49, DomainOpenness, false, "I would like a job that requires me to come up with new ideas every day."},
	{50, DomainConscientiousness, true, "I prefer to do things well enough rather than perfectly."},
	{51, DomainAgreeableness, true, "When people make mistakes, I tell them directly and bluntly what I think."},
	{52, DomainExtraversion, true, "I sometimes feel that I am a worthless person."},
	{53, DomainEmotionality, true, "Even in an emergency I wouldn't feel like panicking."},
	{54, DomainHonesty, true, "I would pretend to agree with someone important in order to win their favor."},
	{55, DomainOpenness, true, "I find it boring to discuss philosophy."},
	{56, DomainConscientiousness, true, "I prefer to do whatever comes to mind, rather than stick to a plan."},
	{57, DomainAgreeableness, true, "When people tell me that I'm wrong, my first reaction is to argue with them."},
	{58, DomainExtraversion, false, "When I'm in a group of people, I'm often the one who speaks on behalf of the group."},
	{59, DomainEmotionality, true, "I remain unemotional even in situations where most people get very sentimental."},
	{60, DomainHonesty, true, "I'd be tempted to use counterfeit money if I were sure I could get away with it."},
}

// The six domain scales in declaration order. Each facet lists the ids of
// its items; together the facets partition items 1..60.
var scaleDefs = []models.Scale{
	{
		Domain:      DomainHonesty,
		DisplayName: "Honesty-Humility",
		Letter:      "H",
		Facets: []models.Facet{
			{Name: "Sincerity", Items: []int{6, 30, 54}},
			{Name: "Fairness", Items: []int{12, 36, 60}},
			{Name: "Greed Avoidance", Items: []int{18, 42}},
			{Name: "Modesty", Items: []int{24, 48}},
		},
	},
	{
		Domain:      DomainEmotionality,
		DisplayName: "Emotionality",
		Letter:      "E",
		Facets: []models.Facet{
			{Name: "Fearfulness", Items: []int{5, 29, 53}},
			{Name: "Anxiety", Items: []int{11, 35}},
			{Name: "Dependence", Items: []int{17, 41}},
			{Name: "Sentimentality", Items: []int{23, 47, 59}},
		},
	},
	{
		Domain:      DomainExtraversion,
		DisplayName: "Extraversion",
		Letter:      "X",
		Facets: []models.Facet{
			{Name: "Social Self-Esteem", Items: []int{4, 28, 52}},
			{Name: "Social Boldness", Items: []int{10, 34, 58}},
			{Name: "Sociability", Items: []int{16, 40}},
			{Name: "Liveliness", Items: []int{22, 46}},
		},
	},
	{
		Domain:      DomainAgreeableness,
		DisplayName: "Agreeableness",
		Letter:      "A",
		Facets: []models.Facet{
			{Name: "Forgivingness", Items: []int{3, 27}},
			{Name: "Gentleness", Items: []int{9, 33, 51}},
			{Name: "Flexibility", Items: []int{15, 39, 57}},
			{Name: "Patience", Items: []int{21, 45}},
		},
	},
	{
		Domain:      DomainConscientiousness,
		DisplayName: "Conscientiousness",
		Letter:      "C",
		Facets: []models.Facet{
			{Name: "Organization", Items: []int{2, 26}},
			{Name: "Diligence", Items: []int{8, 32}},
			{Name: "Perfectionism", Items: []int{14, 38, 50}},
			{Name: "Prudence", Items: []int{20, 44, 56}},
		},
	},
	{
		Domain:      DomainOpenness,
		DisplayName: "Openness to Experience",
		Letter:      "O",
		Facets: []models.Facet{
			{Name: "Aesthetic Appreciation", Items: []int{1, 25}},
			{Name: "Inquisitiveness", Items: []int{7, 31}},
			{Name: "Creativity", Items: []int{13, 37, 49}},
			{Name: "Unconventionality", Items: []int{19, 43, 55}},
		},
	},
}
