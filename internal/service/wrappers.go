package service

// DictionaryServiceWrapper defines middleware composition for DictionaryService.
// Implementations wrap an existing DictionaryService to add behavior such as
// logging or validating.
type DictionaryServiceWrapper interface {
	Wrap(DictionaryService) DictionaryService // returns a decorated DictionaryService applying additional behavior
}
