package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"

	"cloud.google.com/go/kms/apiv1/kmspb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/hsbooks/internal/errs"
)

const dataKeySize = 32

// kmsClient is the subset of *kms.KeyManagementClient used here.
type kmsClient interface {
	Encrypt(ctx context.Context, req *kmspb.EncryptRequest, opts ...gax.CallOption) (*kmspb.EncryptResponse, error)
	Decrypt(ctx context.Context, req *kmspb.DecryptRequest, opts ...gax.CallOption) (*kmspb.DecryptResponse, error)
}

// envelope is the sealed form of a blob: AES-GCM ciphertext plus the data key
// wrapped by the KMS key.
type envelope struct {
	WrappedKey []byte `json:"key"`
	Nonce      []byte `json:"nonce"`
	Data       []byte `json:"data"`
}

type kms struct {
	client  kmsClient
	keyName string
}

func NewKMS(client kmsClient, keyName string) *kms {
	return &kms{client: client, keyName: keyName}
}

// Seal encrypts plaintext under a fresh data key. Snapshots can exceed the
// KMS request limit, so only the data key goes to KMS.
func (k *kms) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	dataKey := make([]byte, dataKeySize)
	if _, err := rand.Read(dataKey); err != nil {
		return nil, errs.NewEncryptionError("failed to generate data key", err)
	}
	gcm, err := newGCM(dataKey)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errs.NewEncryptionError("failed to generate nonce", err)
	}

	resp, err := k.client.Encrypt(ctx, &kmspb.EncryptRequest{
		Name:      k.keyName,
		Plaintext: dataKey,
	})
	if err != nil {
		return nil, kmsError("failed to wrap data key", err)
	}

	return json.Marshal(envelope{
		WrappedKey: resp.Ciphertext,
		Nonce:      nonce,
		Data:       gcm.Seal(nil, nonce, plaintext, nil),
	})
}

// Open reverses Seal.
func (k *kms) Open(ctx context.Context, sealed []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(sealed, &env); err != nil {
		return nil, errs.NewEncryptionError("malformed sealed blob", err)
	}

	resp, err := k.client.Decrypt(ctx, &kmspb.DecryptRequest{
		Name:       k.keyName,
		Ciphertext: env.WrappedKey,
	})
	if err != nil {
		return nil, kmsError("failed to unwrap data key", err)
	}

	gcm, err := newGCM(resp.Plaintext)
	if err != nil {
		return nil, err
	}
	plain, err := gcm.Open(nil, env.Nonce, env.Data, nil)
	if err != nil {
		return nil, errs.NewEncryptionError("failed to decrypt blob", err)
	}
	return plain, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errs.NewEncryptionError("invalid data key", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errs.NewEncryptionError("failed to init cipher", err)
	}
	return gcm, nil
}

func kmsError(message string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errs.NewExternalServiceError("kms", message, true, err)
	}
	return errs.NewExternalServiceError("kms", message, false, err)
}
