// Package docs provides Google Docs document management on top of the Docs
// and Drive APIs.
//
// The package centers on a Markdown compiler: MarkdownToRequests turns a
// subset of Markdown (ATX headings levels 1-3, dash and star bullets, bold,
// italic, and inline code) into the ordered batchUpdate requests that
// reproduce the content in a document. Around it, Client implements the
// document lifecycle: creating documents in a managed Drive folder,
// replacing their content, reading them back as Markdown via HTML export,
// listing them, and working with their comment threads.
//
// Example usage:
//
//	client, err := docs.NewClient(ctx, httpClient, docs.Config{
//	    RootFolderID: folderID,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, err := client.CreateDocument(ctx, "Weekly Report", "# Summary\n\n- first item", "reports")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.URL)
package docs
