package session

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/muurk/ultinotes/internal/discovery"
	"github.com/muurk/ultinotes/internal/ui"
)

const (
	testRoot = "/USB1/Favorite Games"
	testMAC  = "2:15:41:7e:44:32"
)

type fakeLocator struct {
	ip    string
	err   error
	calls []bool // forceScan per call
}

func (f *fakeLocator) Locate(ctx context.Context, forceScan bool) (string, error) {
	f.calls = append(f.calls, forceScan)
	if f.err != nil {
		return "", f.err
	}
	return f.ip, nil
}

func notFound() error {
	return &discovery.NotFoundError{MAC: testMAC, Subnet: "192.168.1.0/24"}
}

type putCall struct {
	host, local, remoteDir string
	content                []byte
}

type fakeClient struct {
	dirs     []string
	listErrs []error // consumed in order, then nil
	mkdirErr error
	putErr   error

	listHosts []string
	made      []string
	puts      []putCall
}

func (f *fakeClient) List(ctx context.Context, host, dir string) ([]string, error) {
	f.listHosts = append(f.listHosts, host)
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.dirs, nil
}

func (f *fakeClient) MakeDir(ctx context.Context, host, dir string) error {
	f.made = append(f.made, dir)
	if f.mkdirErr == nil {
		f.dirs = append(f.dirs, dir[strings.LastIndex(dir, "/")+1:])
	}
	return f.mkdirErr
}

func (f *fakeClient) Put(ctx context.Context, host, local, remoteDir string) error {
	content, _ := os.ReadFile(local)
	f.puts = append(f.puts, putCall{host: host, local: local, remoteDir: remoteDir, content: content})
	return f.putErr
}

type harness struct {
	loc     *fakeLocator
	client  *fakeClient
	addr    *Address
	out     *bytes.Buffer
	pr      *ui.Prompter
	printer *ui.Printer
	browser *Browser
}

func newHarness(input string, loc *fakeLocator, client *fakeClient) *harness {
	h := &harness{
		loc:    loc,
		client: client,
		addr:   &Address{},
		out:    &bytes.Buffer{},
	}
	h.pr = ui.NewPrompter(strings.NewReader(input), h.out)
	h.printer = ui.NewPrinter(h.out)
	h.browser = NewBrowser(loc, client, h.addr, h.pr, h.printer, testRoot, 27, nil)
	return h
}
