package locations

import (
	"fmt"
	"strings"

	"github.com/ougirez/luxcompare/internal/domain"
)

const scoresSystemPrompt = `You are ranking US metros/regions for a long-term education + Airbnb plan.
You receive web search results and must:

- Propose 1-3 strong candidate metros or regions per requested state.
- For each location, compute:
  - EducationScore (0-100), weight 0.45: public high school quality and pipeline, and proximity
    and quality of nearby public universities.
  - FinancialFeasibilityScore (0-100), weight 0.25: for a typical middle/upper-middle property,
    can conservative STR income during ~6 months/year cover interest + property tax?
  - STRViabilityScore (0-100), weight 0.15: clarity and friendliness of short-term rental rules
    for owner-occupied or mixed use (live ~6 months, rent ~6 months).
  - LifestyleScore (0-100), weight 0.15: safety, amenities, airport access, Asian/Chinese
    community presence where relevant.

Then compute totalScore as the weighted combination.

Return ONLY this JSON shape:
{"locations":[{"id":"CA|SF Bay Area","state":"CA","label":"San Francisco Bay Area, CA","totalScore":0,
"educationScore":0,"financialScore":0,"strViabilityScore":0,"lifestyleScore":0,"educationNotes":"",
"financialNotes":"","strNotes":"","lifestyleNotes":"","overallNotes":""}]}

- Scores must be numbers between 0 and 100.
- Fill all required fields; notes can be short strings.
- Do NOT include any markdown, comments, or extra text outside the JSON.`

const zipsSystemPrompt = `You receive web search results about neighborhoods and real estate for a metro/region in the United States.
Extract 3-10 promising ZIP codes in that metro/region that are good candidates for strong public high schools,
reasonable access to good public universities and owner-occupied-friendly short term rental potential (where legal).
For each ZIP assign score (0-100 overall desirability), educationNotes, strNotes ("limited info" if unknown) and overallNotes,
each 1-2 short sentences.
Return ONLY a JSON object with this exact shape:
{"locationId":"string","state":"CA","label":"San Francisco Bay Area, CA","zips":[{"zip":"94303","city":"Palo Alto","state":"CA",
"score":92,"educationNotes":"...","strNotes":"...","overallNotes":"..."}]}
Rules: "zip" must be a 5-digit US ZIP code as a string, "score" a number between 0 and 100, at most 10 zips.
Do NOT include any markdown, comments, or extra text outside the JSON.`

const listingsSystemPrompt = `You receive web search results for homes for sale in a specific US ZIP code.
Identify up to 12 current or recent for-sale listings from major real-estate portals (prefer Redfin, Zillow,
Opendoor, Realtor.com). For each listing output url (direct absolute URL to the listing page), title (e.g.
"3bd 2ba home on Elm St"), price (e.g. "$899,000") if available, source (domain, e.g. "redfin.com") and
summary (1-2 short sentences).
Output ONLY this JSON shape:
{"zip":"94301","listings":[{"url":"https://www.redfin.com/...","title":"...","price":"$3.2M","source":"redfin.com","summary":"..."}]}
"listings" may be empty if no suitable URLs are found. Do NOT include any markdown, comments, or extra text outside the JSON.`

func scoresUserPrompt(states []string, evidence string) string {
	return fmt.Sprintf("Requested US state codes: %s.\n\nWeb search results about schools, universities, STR rules "+
		"and lifestyle in those states:\n%s\n\nUsing ONLY this data plus your general knowledge, produce the JSON "+
		"described in the system prompt.", strings.Join(states, ", "), evidence)
}

func zipsUserPrompt(req *domain.ZipSuggestionsRequest, evidence string) string {
	locationID := req.LocationID
	if locationID == "" {
		locationID = "(none)"
	}
	return fmt.Sprintf("State code: %s\nLocation label: %s\nLocation id (caller-provided): %s\n\n"+
		"Web search results:\n%s\n\nUsing ONLY this data plus your general knowledge, output the JSON object "+
		"described in the system prompt.", req.State, req.Label, locationID, evidence)
}

func listingsUserPrompt(req *domain.ZipListingsRequest, evidence string) string {
	state := req.State
	if state == "" {
		state = "(unknown)"
	}
	return fmt.Sprintf("ZIP code: %s\nState: %s\n\nWeb search results:\n%s\n\nUsing ONLY this data plus your "+
		"general knowledge, output the JSON object described in the system prompt.", req.Zip, state, evidence)
}
