package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilesystemLoader loads footer sets from a directory on the filesystem.
// Implements AssetLoader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadFooterSet loads a footer set from the filesystem.
// Looks for {basePath}/footers/{name}/footer.html and footer.txt
func (f *FilesystemLoader) LoadFooterSet(name string) (*FooterSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dirPath := filepath.Join(f.basePath, "footers", name)

	if err := f.verifyPathContainment(dirPath + string(filepath.Separator)); err != nil {
		return nil, err
	}

	htmlPath := filepath.Join(dirPath, htmlFooterFile)
	textPath := filepath.Join(dirPath, textFooterFile)

	html, htmlErr := os.ReadFile(htmlPath) // #nosec G304 -- path validated above
	text, textErr := os.ReadFile(textPath) // #nosec G304 -- path validated above

	if os.IsNotExist(htmlErr) && os.IsNotExist(textErr) {
		return nil, fmt.Errorf("%w: %q", ErrFooterSetNotFound, name)
	}

	if htmlErr != nil && !os.IsNotExist(htmlErr) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, htmlFooterFile, htmlErr)
	}
	if textErr != nil && !os.IsNotExist(textErr) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, textFooterFile, textErr)
	}

	if os.IsNotExist(htmlErr) {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteFooterSet, name, htmlFooterFile)
	}
	if os.IsNotExist(textErr) {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteFooterSet, name, textFooterFile)
	}

	return &FooterSet{
		Name: name,
		HTML: trimFinalNewline(string(html)),
		Text: trimFinalNewline(string(text)),
	}, nil
}

// FooterSetNames lists the footer set directories under basePath, sorted.
// Directories whose names are not valid asset names are skipped.
func (f *FilesystemLoader) FooterSetNames() []string {
	entries, err := os.ReadDir(filepath.Join(f.basePath, "footers"))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && ValidateAssetName(entry.Name()) == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Symlinks are resolved first so a link cannot point outside basePath.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file keeps its unresolved path; reading it fails later anyway.
	realPath, err := filepath.EvalSymlinks(absFilePath)
	if err == nil {
		absFilePath = realPath
	}

	// Separator suffix rejects sibling prefixes (/base/path vs /base/pathevil)
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
