package answers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Answer is one entry of the chatbot knowledge base
type Answer struct {
	ID       string   `json:"id"`
	Keywords []string `json:"Keywords,omitempty"`
	Answer   string   `json:"Answer"`
	Category string   `json:"Category"`
}

type airtableRecord struct {
	ID     string `json:"id"`
	Fields Answer `json:"fields"`
}

type airtableResponse struct {
	Records []airtableRecord `json:"records"`
	Offset  *string          `json:"offset"`
}

var airtableAPI = "https://api.airtable.com/v0"

func loadAirtableRecords(base, table, key string) ([]airtableRecord, error) {
	var records []airtableRecord
	offset := ""
	client := &http.Client{Timeout: 30 * time.Second}

	for {
		reqURL := fmt.Sprintf("%s/%s/%s?pageSize=100", airtableAPI, base, table)
		if offset != "" {
			reqURL += fmt.Sprintf("&offset=%s", offset)
		}

		req, err := http.NewRequest(http.MethodGet, reqURL, nil)
		if err != nil {
			return records, err
		}
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", key))
		res, err := client.Do(req)
		if err != nil {
			return records, err
		}
		body, readErr := ioutil.ReadAll(res.Body)
		res.Body.Close()
		if readErr != nil {
			return records, readErr
		}
		if res.StatusCode != http.StatusOK {
			return records, fmt.Errorf("Airtable returned status %d", res.StatusCode)
		}

		airtableRes := airtableResponse{}
		if err := json.Unmarshal(body, &airtableRes); err != nil {
			return records, err
		}
		records = append(records, airtableRes.Records...)

		if airtableRes.Offset == nil {
			return records, nil
		}
		offset = *airtableRes.Offset
	}
}

// LoadAirtableAnswers loads the knowledge base table from Airtable. Entries
// without an answer are skipped and the rest are grouped by category.
func LoadAirtableAnswers(base, table, key string) ([]Answer, error) {
	var answers []Answer

	records, err := loadAirtableRecords(base, table, key)
	if err != nil {
		return answers, errors.Wrap(err, "load airtable answers")
	}

	for _, rec := range records {
		if strings.TrimSpace(rec.Fields.Answer) == "" {
			continue
		}
		answer := rec.Fields
		answer.ID = rec.ID
		answers = append(answers, answer)
	}

	sort.SliceStable(answers, func(a, b int) bool {
		return answers[a].Category < answers[b].Category
	})
	return answers, nil
}

// PublishAnswers writes the knowledge base where the chat handler reads it
func PublishAnswers(svc s3iface.S3API, bucket, key string, answers []Answer) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return errors.Wrap(err, "encode answers")
	}
	_, err = svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ACL:         aws.String("private"),
		Body:        bytes.NewReader(answersJSON),
		ContentType: aws.String("application/json"),
	})
	return errors.Wrapf(err, "put s3://%s/%s", bucket, key)
}

// LoadAnswersFromS3 pulls the latest knowledge base from S3
func LoadAnswersFromS3(svc s3iface.S3API, bucket, key string) ([]Answer, error) {
	var answers []Answer
	results, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return answers, errors.Wrapf(err, "get s3://%s/%s", bucket, key)
	}
	defer results.Body.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, results.Body); err != nil {
		return answers, errors.Wrap(err, "read answers")
	}
	if err := json.Unmarshal(buf.Bytes(), &answers); err != nil {
		return answers, errors.Wrap(err, "decode answers")
	}
	return answers, nil
}

// Source provides the current knowledge base
type Source interface {
	Answers() ([]Answer, error)
}

// Store is a Source reading from S3 and caching between Lambda invocations
type Store struct {
	S3     s3iface.S3API
	Bucket string
	Key    string
	cache  *cache.Cache
}

// NewStore is a constructor for Store structs
func NewStore(svc s3iface.S3API, bucket, key string, ttl time.Duration) *Store {
	return &Store{
		S3:     svc,
		Bucket: bucket,
		Key:    key,
		cache:  cache.New(ttl, 2*ttl),
	}
}

// Answers returns the cached knowledge base, loading it from S3 when it has expired
func (s *Store) Answers() ([]Answer, error) {
	if cached, found := s.cache.Get(s.Key); found {
		return cached.([]Answer), nil
	}
	answers, err := LoadAnswersFromS3(s.S3, s.Bucket, s.Key)
	if err != nil {
		return nil, err
	}
	s.cache.Set(s.Key, answers, cache.DefaultExpiration)
	return answers, nil
}

// StaticSource is a Source over a fixed knowledge base
type StaticSource []Answer

func (s StaticSource) Answers() ([]Answer, error) {
	return s, nil
}
