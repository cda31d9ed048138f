package rulebook

// labels.go - The rule labels the detectors emit. The exact strings
// matter: they key the summary table, the label-usage set, and the
// named anchors in rendered output.

// Lexical rules.
const (
	LabelFirstPerson   = "No 'I', 'we', 'us', 'our' or 'you' in academic writing"
	LabelEthosPathos   = "Avoid the words 'ethos', 'pathos', and 'logos'"
	LabelVeryALot      = "Avoid the words 'very' and 'a lot'"
	LabelWhich         = "Avoid the word 'which'"
	LabelHumanPeople   = "Avoid using the words 'human', 'people', 'everyone', or 'individual'"
	LabelFactProof     = "Avoid the words 'fact', 'proof', and 'prove'"
	LabelOverlyGeneral = "Avoid overly general words like 'society', 'universe', 'reality', 'life', and 'truth'"
	LabelEtc           = "Avoid 'etc.' in academic writing"
	LabelReader        = "Avoid referring to the reader or audience unless necessary"
	LabelTherefore     = "Avoid the words 'therefore', 'thereby', 'hence', and 'thus'"
	LabelContractions  = "No contractions in academic writing"
	LabelArticle       = "Article error"
	LabelTextAsText    = "Do not refer to the text as a text; refer to context instead"
	LabelWeakVerbs     = "Avoid weak verbs"
	LabelNumbers       = "Write out the numbers one through ten"
	LabelUncountable   = "Uncountable noun"
	LabelAndOveruse    = "Avoid using the word 'and' more than once in a sentence"
	LabelPronounClear  = "Clarify pronouns and antecedents"
)

// Structural rules.
const (
	LabelBoundary        = "Use a boundary statement when transitioning between paragraphs"
	LabelClosedThesis    = "Use a closed thesis statement"
	LabelSpecificTopics  = "The topics in the thesis statement should be specific devices or strategies"
	LabelThesisOrg       = "Organization of thesis statement"
	LabelShortSummary    = "A one-sentence summary is always insufficient"
	LabelUndeveloped     = "Undeveloped paragraph"
	LabelNeedsEvidence   = "Every paragraph needs evidence"
	LabelIncompleteConcl = "Incomplete conclusion"
	LabelFollowThesis    = "Follow the organization of the thesis"
	LabelTopicInThesis   = "Put this topic in the thesis statement"
	LabelOffTopic        = "Off-topic"
	LabelMoveToTopic     = "Move this to the topic sentence"
	LabelFirstSentence   = "The first sentence must state the author's full name, genre and title of the text, and present a concrete and general summary"
	LabelAuthorName      = "Is this the author's full name?"
	LabelTitleCorrect    = "Is this the correct title?"
)

// Quotation rules.
const (
	LabelNoQuoteThesis     = "No quotations in thesis statements"
	LabelNoQuoteIntro      = "Avoid quotations in the introduction"
	LabelNoQuoteTopic      = "No quotations in topic sentences"
	LabelNoQuoteFinal      = "No quotations in the final sentence of a body paragraph"
	LabelNoQuoteConclusion = "Avoid quotations in the conclusion"
	LabelFloatingQuote     = "Floating quotation"
	LabelLongQuote         = "Shorten, modify, and integrate quotations"
	LabelCiteOnce          = "Only cite a quotation once"
	LabelEvidenceProcess   = "Follow the process for inserting evidence"
	LabelQuoteFirst        = "Avoid beginning a sentence with a quotation"
)

// Title-line rules.
const (
	LabelTitleFormat     = "Essay title format"
	LabelTitleCapitalize = "Capitalize the words in titles"
	LabelMinorWorkQuotes = "The title of minor works should be inside double quotation marks"
	LabelMajorWorkItalic = "The title of major works should be italicized"
)
