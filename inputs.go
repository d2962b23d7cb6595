package guessx

import (
	"regexp"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/guessx/dictionary"
	sliceutil "github.com/projectdiscovery/utils/slice"
	urlutil "github.com/projectdiscovery/utils/url"
	"golang.org/x/net/publicsuffix"
)

var extractWords = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Input contains the parts of a user supplied value worth matching, ex:
// `John.Doe@mail.example.co.uk`
type Input struct {
	Raw   string   // lower-cased value ex: `john.doe@mail.example.co.uk`
	Local string   // part before `@` of an e-mail ex: `john.doe`
	Root  string   // registrable domain (eTLD+1) ex: `example.co.uk`
	SLD   string   // registrable label ex: `example`
	Subs  []string // labels left of the root ex: `mail`
	Words []string // letter and digit runs of Raw
}

// NewInput decomposes e-mails and hostnames, anything else is only split into words
func NewInput(value string) *Input {
	raw := strings.ToLower(strings.TrimSpace(value))
	in := &Input{Raw: raw, Words: extractWords.FindAllString(raw, -1)}
	host := raw
	if local, domain, ok := strings.Cut(raw, "@"); ok {
		in.Local = local
		host = domain
	}
	if !strings.Contains(host, ".") || strings.ContainsAny(host, " \t") {
		return in
	}
	URL, err := urlutil.Parse(host)
	if err != nil {
		return in
	}
	hostname := URL.Hostname()
	rootDomain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		gologger.Verbose().Msgf("user input %v has no registrable domain: %v", hostname, err)
		return in
	}
	suffix, _ := publicsuffix.PublicSuffix(hostname)
	in.Root = rootDomain
	in.SLD = strings.TrimSuffix(rootDomain, "."+suffix)
	if prefix := strings.TrimSuffix(strings.TrimSuffix(hostname, rootDomain), "."); prefix != "" {
		in.Subs = strings.Split(prefix, ".")
	}
	return in
}

// GetWords returns the candidate words of the input, most specific first
func (i *Input) GetWords() []string {
	words := []string{i.Raw}
	for _, v := range append([]string{i.Local, i.SLD, i.Root}, i.Subs...) {
		if v != "" {
			words = append(words, v)
		}
	}
	return append(words, i.Words...)
}

// userInputsDictionary ranks the words of all inputs by order of appearance
func userInputsDictionary(inputs []string) *dictionary.Dictionary {
	var words []string
	for _, v := range inputs {
		if strings.TrimSpace(v) == "" {
			continue
		}
		words = append(words, NewInput(v).GetWords()...)
	}
	if len(words) == 0 {
		return nil
	}
	return dictionary.FromList(UserInputsDictionary, sliceutil.Dedupe(words)).WithKind(dictionary.KindUserInputs)
}
