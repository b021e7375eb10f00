package faq

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
)

// Entry is one question and answer from the FAQ dataset
type Entry struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Dataset is a read-only view over an ordered list of FAQ entries
type Dataset interface {
	Entries() []Entry
}

// StaticDataset implements Dataset over a fixed slice
type StaticDataset struct {
	entries []Entry
}

// NewStaticDataset copies entries so later changes to the caller's slice aren't visible
func NewStaticDataset(entries []Entry) *StaticDataset {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &StaticDataset{entries: copied}
}

// Entries returns a copy of the entries in dataset order
func (d *StaticDataset) Entries() []Entry {
	entries := make([]Entry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// LoadDataset decodes a JSON array of entries
func LoadDataset(r io.Reader) (*StaticDataset, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode faq dataset")
	}
	return NewStaticDataset(entries), nil
}

// LoadDatasetFromS3 pulls the published FAQ dataset from S3
func LoadDatasetFromS3(svc s3iface.S3API, bucket, key string) (*StaticDataset, error) {
	result, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get s3://%s/%s", bucket, key)
	}
	defer result.Body.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, result.Body); err != nil {
		return nil, errors.Wrap(err, "read faq dataset")
	}
	return LoadDataset(buf)
}

// PublishDataset writes entries to S3 as the JSON array LoadDataset reads
func PublishDataset(svc s3iface.S3API, bucket, key string, entries []Entry) error {
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(entriesJSON),
		ContentType: aws.String("application/json"),
	})
	return errors.Wrapf(err, "put s3://%s/%s", bucket, key)
}
