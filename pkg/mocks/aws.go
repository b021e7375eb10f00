package mocks

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/stretchr/testify/mock"
)

// S3Mock mocks the S3 calls the loaders make. Calling anything else panics.
type S3Mock struct {
	s3iface.S3API
	mock.Mock
}

// GetObject mocks reading an object
func (m *S3Mock) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	args := m.Called(input)
	if v := args.Get(0); v != nil {
		return v.(*s3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

// PutObject mocks writing an object
func (m *S3Mock) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	args := m.Called(input)
	if v := args.Get(0); v != nil {
		return v.(*s3.PutObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

// SNSMock mocks SNS publishing
type SNSMock struct {
	snsiface.SNSAPI
	mock.Mock
}

// Publish mocks publishing to a topic
func (m *SNSMock) Publish(input *sns.PublishInput) (*sns.PublishOutput, error) {
	args := m.Called(input)
	if v := args.Get(0); v != nil {
		return v.(*sns.PublishOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

// PublisherMock mocks svc.Publisher
type PublisherMock struct {
	mock.Mock
}

// Publish mocks publishing a message to a topic and feed
func (m *PublisherMock) Publish(message, topicArn, feed string) error {
	return m.Called(message, topicArn, feed).Error(0)
}
