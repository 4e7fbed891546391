package repositories

import (
	bleveindex "jobcard-backend/bleve/services"
	"jobcard-backend/db/models"

	"github.com/blevesearch/bleve/v2"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	// ==== Job-card indexing ====
	IndexJobCard(jobCard models.JobCard) error
	IndexExistingJobCards(jobCards []models.JobCard) error
	DeleteJobCard(jobCardID string) error

	// ==== Customer indexing ====
	IndexCustomer(customer models.Customer) error
	IndexExistingCustomers(customers []models.Customer) error
	DeleteCustomer(customerID string) error
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

// search builds the layered query used by both search endpoints: exact term,
// phrase, fuzzy, then prefix matches, each boosted in that order.
func (r *BleveRepository) search(indexName, queryString string, fields []string, size int) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()

	exactMatch := bleve.NewBooleanQuery()
	for _, field := range fields {
		termQuery := bleve.NewTermQuery(queryString)
		termQuery.SetField(field)
		termQuery.SetBoost(6.0)
		exactMatch.AddShould(termQuery)
	}

	phraseMatch := bleve.NewBooleanQuery()
	for _, field := range fields {
		phraseQuery := bleve.NewMatchPhraseQuery(queryString)
		phraseQuery.SetField(field)
		phraseQuery.SetBoost(5.0)
		phraseMatch.AddShould(phraseQuery)
	}

	fuzzyMatch := bleve.NewBooleanQuery()
	for _, field := range fields {
		fuzzyQuery := bleve.NewFuzzyQuery(queryString)
		fuzzyQuery.SetField(field)
		fuzzyQuery.SetFuzziness(2)
		fuzzyQuery.SetBoost(3.0)
		fuzzyMatch.AddShould(fuzzyQuery)
	}

	prefixMatch := bleve.NewBooleanQuery()
	for _, field := range fields {
		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		prefixMatch.AddShould(prefixQuery)
	}

	booleanQuery.AddShould(exactMatch)
	booleanQuery.AddShould(phraseMatch)
	booleanQuery.AddShould(fuzzyMatch)
	booleanQuery.AddShould(prefixMatch)

	return r.indexer.SearchIndex(indexName, booleanQuery, size)
}
